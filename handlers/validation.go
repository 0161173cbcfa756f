package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"bettermann/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures against the json field names clients actually
// send, not the Go struct field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON binds and validates the request body into dest. On failure it
// writes a validation_error response naming the offending field and reason,
// and returns false; no partial record ever reaches a service.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", validationDetail(err))
		return false
	}
	return true
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("field %q failed validation %q=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("field %q failed validation %q", fe.Field(), fe.Tag())
	}
	return err.Error()
}

// storeError renders any persistence failure as the generic
// store_unavailable error; nothing is retried or recovered internally.
func storeError(c *gin.Context, err error) {
	utils.GetLogger().Sugar().Errorf("store error: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "store_unavailable", "Database not available")
}
