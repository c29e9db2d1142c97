package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed = "VAL_004" // Método HTTP não suportado pela rota

	// Erros de recurso
	ErrNotFound = "RES_001" // Recurso não encontrado
	ErrConflict = "RES_002" // Operação já em andamento

	// Erros do servidor
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrStorageOperation   = "SRV_002" // Erro de leitura/escrita da tabela de vendas
	ErrServiceUnavailable = "SRV_003" // Serviço não configurado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidFormat:      http.StatusBadRequest,
	ErrMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrNotFound:           http.StatusNotFound,
	ErrConflict:           http.StatusConflict,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrStorageOperation:   http.StatusInternalServerError,
	ErrServiceUnavailable: http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
