package models

// Contato holds the identification shared by guardians and tios
type Contato struct {
	Foto           string `bson:"foto" json:"foto"`
	CPF            string `bson:"cpf" json:"cpf"`
	Nome           string `bson:"nome" json:"nome"`
	GrauParentesco string `bson:"grauParentesco" json:"grauParentesco"`
	Telefone       string `bson:"telefone" json:"telefone"`
	Endereco       string `bson:"endereco" json:"endereco"`
	Email          string `bson:"email" json:"email"`
}

// Responsavel is a legal guardian of one or more children
type Responsavel struct {
	Meta        `bson:",inline"`
	Contato     `bson:",inline"`
	CriancasIDs []string `bson:"criancasIds" json:"criancasIds"`
}

// Tio is an adult authorized to drop off and pick up children
type Tio struct {
	Meta                   `bson:",inline"`
	Contato                `bson:",inline"`
	CriancasAutorizadasIDs []string `bson:"criancasAutorizadasIds" json:"criancasAutorizadasIds"`
}

// PessoaRequest is the payload to create a guardian
type PessoaRequest struct {
	Foto           string `json:"foto"`
	CPF            string `json:"cpf" binding:"required,min=11,max=14,cpf"`
	Nome           string `json:"nome" binding:"required,min=2"`
	GrauParentesco string `json:"grauParentesco" binding:"required"`
	Telefone       string `json:"telefone" binding:"required,min=10,telefone"`
	Endereco       string `json:"endereco" binding:"required,min=5"`
	Email          string `json:"email" binding:"required,email"`
}

// TioRequest is the payload to create a tio
type TioRequest struct {
	PessoaRequest
	CriancasAutorizadasIDs []string `json:"criancasAutorizadasIds"`
}

// PessoaUpdateRequest is a partial update of a guardian or tio
type PessoaUpdateRequest struct {
	Foto           *string `json:"foto"`
	CPF            *string `json:"cpf" binding:"omitempty,min=11,max=14,cpf"`
	Nome           *string `json:"nome" binding:"omitempty,min=2"`
	GrauParentesco *string `json:"grauParentesco" binding:"omitempty,min=1"`
	Telefone       *string `json:"telefone" binding:"omitempty,min=10,telefone"`
	Endereco       *string `json:"endereco" binding:"omitempty,min=5"`
	Email          *string `json:"email" binding:"omitempty,email"`
}

// TioUpdateRequest is a partial update of a tio; a present list replaces
// the authorized children
type TioUpdateRequest struct {
	PessoaUpdateRequest
	CriancasAutorizadasIDs *[]string `json:"criancasAutorizadasIds"`
}

// ToContato builds the stored contact from a request
func (r PessoaRequest) ToContato() Contato {
	return Contato{
		Foto:           r.Foto,
		CPF:            r.CPF,
		Nome:           r.Nome,
		GrauParentesco: r.GrauParentesco,
		Telefone:       r.Telefone,
		Endereco:       r.Endereco,
		Email:          r.Email,
	}
}

// ResponsavelListResponse is a page of guardians
type ResponsavelListResponse struct {
	Responsaveis []Responsavel   `json:"responsaveis"`
	Pagination   PaginationInfo `json:"pagination"`
}

// TioListResponse is a page of tios
type TioListResponse struct {
	Tios       []Tio          `json:"tios"`
	Pagination PaginationInfo `json:"pagination"`
}

// ResponsavelDeleteResponse reports children still pointing at a deleted guardian
type ResponsavelDeleteResponse struct {
	ID                        string   `json:"id"`
	CriancasSemResponsavelIDs []string `json:"criancasSemResponsavelIds"`
}

// Dados returns the contact data of a guardian or tio
func (c *Contato) Dados() *Contato {
	return c
}
