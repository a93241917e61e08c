package models

import "time"

// Crianca is a child registered in the program
type Crianca struct {
	Meta           `bson:",inline"`
	Foto           string    `bson:"foto" json:"foto"`
	Nome           string    `bson:"nome" json:"nome"`
	DataNascimento time.Time `bson:"dataNascimento" json:"dataNascimento"`
	Sexo           Sexo      `bson:"sexo" json:"sexo"`
	Observacoes    string    `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
	ResponsavelID  string    `bson:"responsavelId" json:"responsavelId"`
}

// CriancaDetail is a child with its derived age and linked people
type CriancaDetail struct {
	Crianca
	Idade        int           `json:"idade"`
	SalaSugerida Sala          `json:"salaSugerida,omitempty"`
	Responsaveis []Responsavel `json:"responsaveis"`
	Tios         []Tio         `json:"tios"`
}

// CriancaRequest is the payload to create a child
type CriancaRequest struct {
	Foto           string `json:"foto"`
	Nome           string `json:"nome" binding:"required,min=2"`
	DataNascimento string `json:"dataNascimento" binding:"required,isodate"`
	Sexo           Sexo   `json:"sexo" binding:"required,oneof=M F"`
	Observacoes    string `json:"observacoes"`
	ResponsavelID  string `json:"responsavelId" binding:"required"`
}

// CriancaUpdateRequest is a partial update of a child
type CriancaUpdateRequest struct {
	Foto           *string `json:"foto"`
	Nome           *string `json:"nome" binding:"omitempty,min=2"`
	DataNascimento *string `json:"dataNascimento" binding:"omitempty,isodate"`
	Sexo           *Sexo   `json:"sexo" binding:"omitempty,oneof=M F"`
	Observacoes    *string `json:"observacoes"`
	ResponsavelID  *string `json:"responsavelId" binding:"omitempty,min=1"`
}

// CriancaListResponse is a page of children
type CriancaListResponse struct {
	Criancas   []Crianca      `json:"criancas"`
	Pagination PaginationInfo `json:"pagination"`
}
