package models

// CheckInRequest asks to drop a child off at a culto
type CheckInRequest struct {
	CriancaID       string `json:"criancaId" form:"criancaId" binding:"required"`
	ResponsavelID   string `json:"responsavelId" form:"responsavelId" binding:"required"`
	CultoID         string `json:"cultoId" form:"cultoId" binding:"required"`
	FotoResponsavel string `json:"fotoResponsavel" form:"fotoResponsavel"`
}

// CheckOutRequest asks to pick a child up from a culto
type CheckOutRequest struct {
	CriancaID       string `json:"criancaId" form:"criancaId" binding:"required"`
	ResponsavelID   string `json:"responsavelId" form:"responsavelId" binding:"required"`
	CultoID         string `json:"cultoId" form:"cultoId" binding:"required"`
	FotoResponsavel string `json:"fotoResponsavel" form:"fotoResponsavel"`
}

// ConfirmacaoCheckIn is a servant confirming a drop-off. ServoID is taken
// from the signed-in user.
type ConfirmacaoCheckIn struct {
	CriancaID string `json:"criancaId" form:"criancaId" binding:"required"`
	CultoID   string `json:"cultoId" form:"cultoId" binding:"required"`
	ServoID   string `json:"-" form:"-"`
	FotoServo string `json:"fotoServo" form:"fotoServo"`
}

// ConfirmacaoCheckOut is a servant confirming a pick-up
type ConfirmacaoCheckOut struct {
	CriancaID string `json:"criancaId" form:"criancaId" binding:"required"`
	CultoID   string `json:"cultoId" form:"cultoId" binding:"required"`
	ServoID   string `json:"-" form:"-"`
	FotoServo string `json:"fotoServo" form:"fotoServo"`
}

// CancelCheckInRequest withdraws an unconfirmed drop-off
type CancelCheckInRequest struct {
	CriancaID string `json:"criancaId" form:"criancaId" binding:"required"`
	CultoID   string `json:"cultoId" form:"cultoId" binding:"required"`
}
