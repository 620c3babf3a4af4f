package connecting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conexão com plataformas
var (
	ErrUnknownPlatform    = errors.New("plataforma desconhecida")
	ErrCredentialNotFound = errors.New("credencial não encontrada")
	ErrMissingAccessToken = errors.New("access token é obrigatório")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ConnectionError é um erro com contexto adicional para conexões
type ConnectionError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	Platform string // Plataforma envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError cria um novo ConnectionError
func NewConnectionError(err error, code string, platform string, details string) *ConnectionError {
	return &ConnectionError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
