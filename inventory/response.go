package inventory

import "stockroom/inventory/model"

// Every endpoint answers {statusCode, message, data, meta?}. HTTPStatus is
// written as the response status and mirrored in StatusCode.

type ProductResponse struct {
	HTTPStatus int            `encore:"httpstatus"`
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Data       *model.Product `json:"data"`
}

type ProductListResponse struct {
	StatusCode int              `json:"statusCode"`
	Message    string           `json:"message"`
	Data       []*model.Product `json:"data"`
	Meta       model.Meta       `json:"meta"`
}

type SaleResponse struct {
	HTTPStatus int         `encore:"httpstatus"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       *model.Sale `json:"data"`
}

type SaleListResponse struct {
	StatusCode int           `json:"statusCode"`
	Message    string        `json:"message"`
	Data       []*model.Sale `json:"data"`
	Meta       model.Meta    `json:"meta"`
}

type LookupResponse struct {
	HTTPStatus int           `encore:"httpstatus"`
	StatusCode int           `json:"statusCode"`
	Message    string        `json:"message"`
	Data       *model.Lookup `json:"data"`
}

type LookupListResponse struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       []*model.Lookup `json:"data"`
	Meta       model.Meta      `json:"meta"`
}

func productResponse(status int, message string, p *model.Product) *ProductResponse {
	return &ProductResponse{HTTPStatus: status, StatusCode: status, Message: message, Data: p}
}

func saleResponse(status int, message string, s *model.Sale) *SaleResponse {
	return &SaleResponse{HTTPStatus: status, StatusCode: status, Message: message, Data: s}
}

func lookupResponse(status int, message string, l *model.Lookup) *LookupResponse {
	return &LookupResponse{HTTPStatus: status, StatusCode: status, Message: message, Data: l}
}
