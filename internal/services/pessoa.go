package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// pessoaRecord is a stored guardian or tio
type pessoaRecord[T any] interface {
	repository.Record[T]
	Dados() *models.Contato
}

// pessoaCadastro holds the contact rules shared by guardians and tios
type pessoaCadastro[T any, P pessoaRecord[T]] struct {
	store  repository.Store[T]
	entity string
	label  string
	cache  *cache
	logger *logging.SafeLogger
}

func newPessoaCadastro[T any, P pessoaRecord[T]](store repository.Store[T], entity, label string, c *cache) *pessoaCadastro[T, P] {
	return &pessoaCadastro[T, P]{
		store:  store,
		entity: entity,
		label:  label,
		cache:  c,
		logger: logging.Logger.Named(entity + "_service"),
	}
}

func normalizeCPF(cpf string) (string, error) {
	digits := utils.CleanDigits(cpf)
	if !utils.ValidateCPF(digits) {
		return "", models.ErrInvalidCPF
	}
	return digits, nil
}

func normalizeTelefone(telefone string) (string, error) {
	digits := utils.CleanDigits(telefone)
	if !utils.ValidatePhone(digits) {
		return "", models.ErrInvalidPhone
	}
	return digits, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalize validates a contact and stores CPF and phone as digits only
func normalize(c models.Contato) (models.Contato, error) {
	var err error
	if c.CPF, err = normalizeCPF(c.CPF); err != nil {
		return c, err
	}
	if c.Telefone, err = normalizeTelefone(c.Telefone); err != nil {
		return c, err
	}
	c.Nome = strings.TrimSpace(c.Nome)
	c.Endereco = strings.TrimSpace(c.Endereco)
	c.Email = normalizeEmail(c.Email)
	return c, nil
}

func (p *pessoaCadastro[T, P]) checkCPFAvailable(ctx context.Context, cpf, selfID string) error {
	existing, err := p.store.FindBy(ctx, "cpf", cpf)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if P(existing).Metadata().ID != selfID {
		return models.ErrDuplicateCPF
	}
	return nil
}

func (p *pessoaCadastro[T, P]) list(ctx context.Context, page, perPage int) ([]T, int64, error) {
	docs, err := p.store.List(ctx, pageOptions(page, perPage))
	if err != nil {
		return nil, 0, err
	}
	total, err := p.store.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (p *pessoaCadastro[T, P]) get(ctx context.Context, id string) (*T, error) {
	key := cacheKey(p.entity, id)

	var cached T
	if p.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	doc, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, notFound(p.label, id, err)
	}
	p.cache.set(ctx, key, doc)
	return doc, nil
}

// create validates the contact embedded in doc and inserts it
func (p *pessoaCadastro[T, P]) create(ctx context.Context, doc *T) error {
	ctx, span := utils.TraceBusinessLogic(ctx, "create_"+p.entity)
	defer span.End()

	dados := P(doc).Dados()
	normalized, err := normalize(*dados)
	if err != nil {
		return err
	}
	*dados = normalized

	if err := p.checkCPFAvailable(ctx, dados.CPF, ""); err != nil {
		return err
	}

	if err := p.store.Create(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.ErrDuplicateCPF
		}
		utils.RecordErrorInSpan(span, err, utils.Attrs{"entity": p.entity})
		return fmt.Errorf("failed to create %s: %w", p.entity, err)
	}

	p.logger.Info(p.entity+" created",
		zap.String("id", P(doc).Metadata().ID),
		zap.String("cpf", observability.MaskCPF(dados.CPF)))
	return nil
}

// update applies a partial contact update plus extra fields
func (p *pessoaCadastro[T, P]) update(ctx context.Context, id string, req *models.PessoaUpdateRequest, extra bson.M) (*T, error) {
	fields := bson.M{}
	for k, v := range extra {
		fields[k] = v
	}

	if req.Foto != nil {
		fields["foto"] = *req.Foto
	}
	if req.CPF != nil {
		cpf, err := normalizeCPF(*req.CPF)
		if err != nil {
			return nil, err
		}
		if err := p.checkCPFAvailable(ctx, cpf, id); err != nil {
			return nil, err
		}
		fields["cpf"] = cpf
	}
	if req.Nome != nil {
		fields["nome"] = strings.TrimSpace(*req.Nome)
	}
	if req.GrauParentesco != nil {
		fields["grauParentesco"] = *req.GrauParentesco
	}
	if req.Telefone != nil {
		telefone, err := normalizeTelefone(*req.Telefone)
		if err != nil {
			return nil, err
		}
		fields["telefone"] = telefone
	}
	if req.Endereco != nil {
		fields["endereco"] = strings.TrimSpace(*req.Endereco)
	}
	if req.Email != nil {
		fields["email"] = normalizeEmail(*req.Email)
	}

	doc, err := p.store.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, models.ErrDuplicateCPF
		}
		return nil, notFound(p.label, id, err)
	}
	p.cache.del(ctx, cacheKey(p.entity, id))
	return doc, nil
}

func (p *pessoaCadastro[T, P]) delete(ctx context.Context, id string) error {
	if err := p.store.Delete(ctx, id); err != nil {
		return notFound(p.label, id, err)
	}
	p.cache.del(ctx, cacheKey(p.entity, id))
	p.logger.Info(p.entity+" deleted", zap.String("id", id))
	return nil
}
