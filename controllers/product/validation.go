package productcontroller

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mdasifmahmuddev/banglabaari-server/models"
)

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Called once from main before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("productcategory", func(fl validator.FieldLevel) bool {
			return models.IsValidCategory(fl.Field().String())
		})
	}
}
