package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	domain "url-toolkit/internal/domain/url"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError renders validator errors as a single human readable message.
func ValidationError(err error) Response {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return Error(err.Error())
	}

	var errMsgs []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", e.Field()))
		case "url_kind":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [http ws]", e.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be at most %s characters", e.Field(), e.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
	}
}

// RenderJSON writes v as a JSON body with the given status code.
func RenderJSON(w http.ResponseWriter, status int, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return fmt.Errorf("response.RenderJSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_, err = w.Write(buf)
	return err
}

// InvalidURL renders a URL validation failure without the operation prefix
// added by the service layer.
func InvalidURL(err error) Response {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return Error(ve.Error())
	}
	return Error("invalid URL")
}
