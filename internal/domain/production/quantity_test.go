package production_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

func TestQuantity_Validate(t *testing.T) {
	tests := []struct {
		name     string
		quantity production.Quantity
		wantErr  bool
	}{
		{"positive count", production.ProducerQuantity(4), false},
		{"zero count", production.ProducerQuantity(0), true},
		{"positive rate", production.RateQuantity(0.5), false},
		{"zero rate", production.RateQuantity(0), true},
		{"negative rate", production.RateQuantity(-1), true},
		{"NaN rate", production.RateQuantity(math.NaN()), true},
		{"empty kind", production.Quantity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quantity.Validate()

			if tt.wantErr {
				var invalid *production.InvalidQuantityError
				assert.ErrorAs(t, err, &invalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuantity_RateOfProducerCount(t *testing.T) {
	// Arrange
	quantity := production.ProducerQuantity(3)

	// Act
	rate := quantity.Rate(gear, production.DefaultSpeedConfig())

	// Assert
	assert.InDelta(t, 6.0, rate, 1e-9)
	assert.Equal(t, "3 producers", quantity.String())
}

func TestQuantity_RateIsPassedThrough(t *testing.T) {
	quantity := production.RateQuantity(1.5)

	assert.Equal(t, 1.5, quantity.Rate(gear, production.DefaultSpeedConfig()))
	assert.Equal(t, "1.5/s", quantity.String())
}
