package models

import "errors"

// Error constants for cadastro operations
var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrInvalidCPF      = errors.New("CPF inválido")
	ErrDuplicateCPF    = errors.New("CPF já cadastrado")
	ErrInvalidPhone    = errors.New("telefone inválido")
	ErrInvalidDate     = errors.New("data inválida")
	ErrInvalidSala     = errors.New("sala inválida")
	ErrInvalidSexo     = errors.New("sexo inválido")
	ErrPrimaryGuardian = errors.New("não é possível desvincular o responsável principal")
)

// Error constants for attendance operations
var (
	ErrNotAuthorizedPickup = errors.New("pessoa não autorizada para esta criança")
	ErrAlreadyPresent      = errors.New("criança já registrada neste culto")
	ErrNotPresent          = errors.New("criança não registrada neste culto")
	ErrInvalidStatus       = errors.New("status de check-in inválido para esta operação")
)

// Error constants for authentication and accounts
var (
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
	ErrDuplicateEmail     = errors.New("email já cadastrado")
	ErrInvalidTipo        = errors.New("tipo de usuário inválido")
	ErrWeakPassword       = errors.New("a senha deve ter pelo menos 6 caracteres")
	ErrInvalidToken       = errors.New("token inválido")
)

// Error constants for photo uploads
var (
	ErrInvalidPhotoType   = errors.New("tipo de imagem não suportado")
	ErrPhotoTooLarge      = errors.New("imagem excede o tamanho máximo")
	ErrInvalidPhotoFolder = errors.New("pasta de fotos inválida")
)
