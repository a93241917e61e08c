package models

import "time"

// Movimento records one side of a drop-off or pick-up
type Movimento struct {
	Horario         time.Time `bson:"horario" json:"horario"`
	ResponsavelID   string    `bson:"responsavelId" json:"responsavelId"`
	FotoResponsavel string    `bson:"fotoResponsavel" json:"fotoResponsavel"`
	ConfirmadoPor   string    `bson:"confirmadoPor,omitempty" json:"confirmadoPor,omitempty"`
	FotoServo       string    `bson:"fotoServo,omitempty" json:"fotoServo,omitempty"`
}

// Confirmed reports whether a servant confirmed the movement
func (m *Movimento) Confirmed() bool {
	return m != nil && m.ConfirmadoPor != ""
}

// CriancaPresente is a child's attendance record in a culto
type CriancaPresente struct {
	CriancaID string        `bson:"criancaId" json:"criancaId"`
	CheckIn   Movimento     `bson:"checkIn" json:"checkIn"`
	CheckOut  *Movimento    `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	Status    StatusCheckIn `bson:"status" json:"status"`
}

// AwaitingCheckOut reports whether a pick-up was requested but not confirmed
func (p *CriancaPresente) AwaitingCheckOut() bool {
	return p.Status == StatusConfirmado && p.CheckOut != nil && !p.CheckOut.Confirmed()
}

// Culto is a service held on a date for one sala
type Culto struct {
	Meta              `bson:",inline"`
	Data              string            `bson:"data" json:"data"`
	Sala              Sala              `bson:"sala" json:"sala"`
	CriancasPresentes []CriancaPresente `bson:"criancasPresentes" json:"criancasPresentes"`
}

// Presenca returns the attendance record of criancaID, or nil
func (c *Culto) Presenca(criancaID string) *CriancaPresente {
	for i := range c.CriancasPresentes {
		if c.CriancasPresentes[i].CriancaID == criancaID {
			return &c.CriancasPresentes[i]
		}
	}
	return nil
}

// RemovePresenca drops the attendance record of criancaID
func (c *Culto) RemovePresenca(criancaID string) bool {
	for i := range c.CriancasPresentes {
		if c.CriancasPresentes[i].CriancaID == criancaID {
			c.CriancasPresentes = append(c.CriancasPresentes[:i], c.CriancasPresentes[i+1:]...)
			return true
		}
	}
	return false
}

// CountStatus counts presences in status
func (c *Culto) CountStatus(status StatusCheckIn) int {
	n := 0
	for _, p := range c.CriancasPresentes {
		if p.Status == status {
			n++
		}
	}
	return n
}

// CultoRequest is the payload to create a culto
type CultoRequest struct {
	Data string `json:"data" binding:"required,isodate"`
	Sala Sala   `json:"sala" binding:"required,sala"`
}

// CultoUpdateRequest is a partial update of a culto
type CultoUpdateRequest struct {
	Data *string `json:"data" binding:"omitempty,isodate"`
	Sala *Sala   `json:"sala" binding:"omitempty,sala"`
}

// CultoListResponse is a page of cultos
type CultoListResponse struct {
	Cultos     []Culto        `json:"cultos"`
	Pagination PaginationInfo `json:"pagination"`
}

// PresencaView is an attendance record with the child's name
type PresencaView struct {
	CriancaPresente
	CriancaNome string `json:"criancaNome"`
}

// PresencasResponse lists the attendance of one culto
type PresencasResponse struct {
	CultoID   string         `json:"cultoId"`
	Data      string         `json:"data"`
	Sala      Sala           `json:"sala"`
	Presencas []PresencaView `json:"presencas"`
}
