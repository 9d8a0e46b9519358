package mazeapi

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds the mazeshape, mazeenhancer and mazestyle tags to
// gin's binding validator.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		registerErr = errors.Join(
			v.RegisterValidation("mazeshape", nameValidator(func(s string) error {
				_, err := maze.ParseShape(s)
				return err
			})),
			v.RegisterValidation("mazeenhancer", nameValidator(func(s string) error {
				_, err := maze.ParseEnhancer(s)
				return err
			})),
			v.RegisterValidation("mazestyle", nameValidator(func(s string) error {
				_, err := maze.ParseStyle(s)
				return err
			})),
		)
	})
	return registerErr
}

func nameValidator(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return parse(fl.Field().String()) == nil
	}
}
