package distributing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
)

// ErrorKind classifica as falhas de distribuição. Nenhuma delas é
// retentada automaticamente pelo núcleo; retentativa é política do
// chamador externo.
type ErrorKind string

const (
	// KindValidation: a campanha unificada violou regras da plataforma;
	// recuperável editando a campanha
	KindValidation ErrorKind = "validation"
	// KindMapping: objetivo ou campo sem tradução para o vocabulário da
	// plataforma; falha dura, nunca mapeamento aproximado
	KindMapping ErrorKind = "mapping"
	// KindRemoteCreate: a API da plataforma rejeitou ou falhou uma das
	// três etapas de criação
	KindRemoteCreate ErrorKind = "remote_create"
	// KindTransport: falha de rede/timeout; indistinguível de "criado mas
	// resposta perdida", exige verificação manual do chamador
	KindTransport ErrorKind = "transport"
	// KindCredential: credenciais ausentes ou incompletas para a plataforma
	KindCredential ErrorKind = "credential"
)

// DistributionError carrega a falha estruturada de uma tentativa de
// distribuição, incluindo os identificadores já obtidos quando a hierarquia
// falhou no meio do caminho
type DistributionError struct {
	Kind             ErrorKind
	Stage            domain.DistributionStage
	Code             string
	Message          string
	Details          any
	ValidationErrors []string
	Partial          domain.IdentifierChain
}

func (e *DistributionError) Error() string {
	if len(e.ValidationErrors) > 0 {
		return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.ValidationErrors, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError agrega a lista completa de violações de uma plataforma
func NewValidationError(errs []string) *DistributionError {
	return &DistributionError{
		Kind:             KindValidation,
		Stage:            domain.StageValidating,
		Code:             apiErrors.ErrDistributionValidation,
		Message:          "campanha rejeitada pela validação da plataforma",
		ValidationErrors: errs,
	}
}

// NewMappingError sinaliza objetivo sem entrada na tabela da plataforma
func NewMappingError(objective domain.Objective, platform domain.Platform) *DistributionError {
	return &DistributionError{
		Kind:    KindMapping,
		Stage:   domain.StageMapping,
		Code:    apiErrors.ErrDistributionMapping,
		Message: fmt.Sprintf("objetivo %q não possui mapeamento para a plataforma %s", objective, platform),
	}
}

// NewRemoteCreateError registra a etapa da hierarquia que falhou e os
// identificadores já criados antes dela
func NewRemoteCreateError(stage domain.DistributionStage, message string, details any, partial domain.IdentifierChain) *DistributionError {
	return &DistributionError{
		Kind:    KindRemoteCreate,
		Stage:   stage,
		Code:    apiErrors.ErrDistributionRemote,
		Message: message,
		Details: details,
		Partial: partial,
	}
}

// NewTransportError registra falha de rede em uma das etapas de criação
func NewTransportError(stage domain.DistributionStage, err error, partial domain.IdentifierChain) *DistributionError {
	return &DistributionError{
		Kind:    KindTransport,
		Stage:   stage,
		Code:    apiErrors.ErrDistributionTransport,
		Message: err.Error(),
		Partial: partial,
	}
}

// NewCredentialError sinaliza credenciais ausentes ou incompletas
func NewCredentialError(message string) *DistributionError {
	return &DistributionError{
		Kind:    KindCredential,
		Stage:   domain.StageValidating,
		Code:    apiErrors.ErrDistributionCredential,
		Message: message,
	}
}

// FailureResult converte o erro estruturado no resultado normalizado da
// plataforma, carregando a cadeia parcial de identificadores
func FailureResult(platform domain.Platform, err *DistributionError) *domain.PlatformCampaignResult {
	result := &domain.PlatformCampaignResult{
		Platform:     platform,
		Success:      false,
		Identifiers:  err.Partial,
		FailedStage:  err.Stage,
		ErrorCode:    err.Code,
		ErrorMessage: err.Message,
		ErrorDetails: err.Details,
	}

	if len(err.ValidationErrors) > 0 {
		result.ErrorDetails = err.ValidationErrors
	}

	return result
}

// SuccessResult monta o resultado de sucesso com a cadeia completa de
// identificadores da hierarquia
func SuccessResult(platform domain.Platform, chain domain.IdentifierChain) *domain.PlatformCampaignResult {
	return &domain.PlatformCampaignResult{
		Platform:    platform,
		Success:     true,
		Identifiers: chain,
	}
}
