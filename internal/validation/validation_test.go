package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name         string   `json:"name" binding:"required"`
	InterestRate *float64 `json:"interestRate" binding:"omitempty,gte=0,lte=100"`
	Images       []string `json:"images" binding:"omitempty,min=1,dive,url"`
	ProductID    string   `json:"productId" binding:"omitempty,mongodb"`
}

func TestMain(m *testing.M) {
	UseJSONFieldNames()
	m.Run()
}

func validate(p samplePayload) error {
	return binding.Validator.ValidateStruct(&p)
}

func TestMessage(t *testing.T) {
	t.Run("required uses json field name", func(t *testing.T) {
		err := validate(samplePayload{})
		require.Error(t, err)
		require.Equal(t, "name is required", Message(err))
	})

	t.Run("lte includes the bound", func(t *testing.T) {
		rate := 150.0
		err := validate(samplePayload{Name: "x", InterestRate: &rate})
		require.Error(t, err)
		require.Equal(t, "interestRate must be less than or equal to 100", Message(err))
	})

	t.Run("min on a slice talks about items", func(t *testing.T) {
		err := validate(samplePayload{Name: "x", Images: []string{}})
		require.Error(t, err)
		require.Equal(t, "images must contain at least 1 item(s)", Message(err))
	})

	t.Run("url elements are checked individually", func(t *testing.T) {
		err := validate(samplePayload{Name: "x", Images: []string{"not-a-url"}})
		require.Error(t, err)
		require.Contains(t, Message(err), "must be a valid URL")
	})

	t.Run("mongodb tag", func(t *testing.T) {
		err := validate(samplePayload{Name: "x", ProductID: "nope"})
		require.Error(t, err)
		require.Equal(t, "productId must be a valid object id", Message(err))
	})

	t.Run("multiple failures join with semicolons", func(t *testing.T) {
		rate := -1.0
		err := validate(samplePayload{InterestRate: &rate})
		require.Error(t, err)
		require.Equal(t, "name is required; interestRate must be greater than or equal to 0", Message(err))
	})

	t.Run("non-validator errors pass through", func(t *testing.T) {
		err := errors.New("invalid character '}'")
		require.Equal(t, "invalid character '}'", Message(err))
	})
}
