package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// StatusOf maps a marketplace error onto the http status reported to callers
func StatusOf(err error, fallback int) int {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
		return http.StatusNotFound
	}
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindState:
		return http.StatusConflict
	case domain.KindExternal:
		return http.StatusBadGateway
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
