package models

// Sexo is the child's sex as recorded by the console
type Sexo string

const (
	SexoMasculino Sexo = "M"
	SexoFeminino  Sexo = "F"
)

// SexoLabel returns the display label; anything but M reads as Feminino.
func SexoLabel(sexo string) string {
	if Sexo(sexo) == SexoMasculino {
		return "Masculino"
	}
	return "Feminino"
}

// Sala is the age-group room a culto is held for
type Sala string

const (
	SalaBaby     Sala = "BABY"
	SalaPrimario Sala = "PRIMARIO"
	SalaJardim   Sala = "JARDIM"
	SalaTeens    Sala = "TEENS"
)

type salaRange struct {
	sala   Sala
	label  string
	minAge int
	maxAge int
}

var salaRanges = []salaRange{
	{SalaBaby, "Baby (2-3 anos)", 2, 3},
	{SalaPrimario, "Primário (4-6 anos)", 4, 6},
	{SalaJardim, "Jardim (7-8 anos)", 7, 8},
	{SalaTeens, "Teens (9-12 anos)", 9, 12},
}

// Salas lists every sala in age order
func Salas() []Sala {
	salas := make([]Sala, 0, len(salaRanges))
	for _, r := range salaRanges {
		salas = append(salas, r.sala)
	}
	return salas
}

// Valid reports whether s is a known sala
func (s Sala) Valid() bool {
	for _, r := range salaRanges {
		if r.sala == s {
			return true
		}
	}
	return false
}

// SalaLabel returns the display label for sala, or sala itself when unknown
func SalaLabel(sala string) string {
	for _, r := range salaRanges {
		if string(r.sala) == sala {
			return r.label
		}
	}
	return sala
}

// SalaForAge suggests the sala for a child of the given age
func SalaForAge(age int) (Sala, bool) {
	for _, r := range salaRanges {
		if age >= r.minAge && age <= r.maxAge {
			return r.sala, true
		}
	}
	return "", false
}

// TipoUsuario distinguishes parents from church servants
type TipoUsuario string

const (
	TipoParents  TipoUsuario = "parents"
	TipoServants TipoUsuario = "servants"
)

// Valid reports whether t is a known user type
func (t TipoUsuario) Valid() bool {
	return t == TipoParents || t == TipoServants
}

// StatusCheckIn is the attendance state of a child in a culto
type StatusCheckIn string

const (
	StatusPendente   StatusCheckIn = "PENDENTE"
	StatusConfirmado StatusCheckIn = "CONFIRMADO"
	StatusCheckout   StatusCheckIn = "CHECKOUT"
)

// LabelsResponse exposes the label maps used by the console
type LabelsResponse struct {
	Salas map[string]string `json:"salas"`
	Sexos map[string]string `json:"sexos"`
}

// Labels builds the sala and sexo label maps
func Labels() LabelsResponse {
	salas := make(map[string]string, len(salaRanges))
	for _, r := range salaRanges {
		salas[string(r.sala)] = r.label
	}
	return LabelsResponse{
		Salas: salas,
		Sexos: map[string]string{
			string(SexoMasculino): SexoLabel(string(SexoMasculino)),
			string(SexoFeminino):  SexoLabel(string(SexoFeminino)),
		},
	}
}
