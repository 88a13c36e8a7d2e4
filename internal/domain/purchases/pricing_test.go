package purchases

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmukeshr/ticketdapp/internal/entity"
	"github.com/0xmukeshr/ticketdapp/internal/store/memory"
)

func TestNewCalculator_DiscountRange(t *testing.T) {
	st := memory.NewStore()

	_, err := NewCalculator(st.EventStore(), -1)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = NewCalculator(st.EventStore(), 101)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	calc, err := NewCalculator(st.EventStore(), 15)
	require.NoError(t, err)
	assert.Equal(t, int64(15), calc.DiscountPercent())
}

func TestCalculator_TokenTotal(t *testing.T) {
	testCases := []struct {
		name      string
		discount  int64
		unitPrice int64
		quantity  int64
		want      int64
	}{
		{
			name:      "reference example: 100 x 10 at 15 percent",
			discount:  15,
			unitPrice: 100,
			quantity:  10,
			want:      850,
		},
		{
			name:      "discount truncates toward zero",
			discount:  15,
			unitPrice: 7,
			quantity:  1,
			// base=7, 7*15/100 = 1 (truncated from 1.05), total 6
			want: 6,
		},
		{
			name:      "zero discount",
			discount:  0,
			unitPrice: 100,
			quantity:  3,
			want:      300,
		},
		{
			name:      "full discount",
			discount:  100,
			unitPrice: 100,
			quantity:  3,
			want:      0,
		},
		{
			name:      "small base fully swallowed by truncation",
			discount:  15,
			unitPrice: 1,
			quantity:  6,
			// base=6, 6*15/100 = 0, total stays 6
			want: 6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc, err := NewCalculator(memory.NewStore().EventStore(), tc.discount)
			require.NoError(t, err)

			got, err := calc.TokenTotal(tc.unitPrice, tc.quantity)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculator_NativeTotal(t *testing.T) {
	calc, err := NewCalculator(memory.NewStore().EventStore(), 15)
	require.NoError(t, err)

	got, err := calc.NativeTotal(250, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got)
}

func TestCalculator_Overflow(t *testing.T) {
	calc, err := NewCalculator(memory.NewStore().EventStore(), 15)
	require.NoError(t, err)

	_, err = calc.NativeTotal(math.MaxInt64/2, 3)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	// base fits but base*discount does not
	_, err = calc.TokenTotal(math.MaxInt64/20, 10)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestCalculator_TotalsForUnknownEvent(t *testing.T) {
	ctx := context.Background()
	calc, err := NewCalculator(memory.NewStore().EventStore(), 15)
	require.NoError(t, err)

	_, err = calc.TokenTotalFor(ctx, 42, 1)
	assert.True(t, errors.Is(err, entity.ErrNotFound))

	_, err = calc.NativeTotalFor(ctx, 42, 1)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestCalculator_TotalsForKnownEvent(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	_, err := st.EventStore().Create(ctx, &entity.Event{
		Name:        "concert",
		NativePrice: 200,
		TokenPrice:  100,
		TotalSupply: 50,
		Remaining:   50,
		BaseURI:     "ipfs://concert",
		Owner:       "alice",
		Active:      true,
	})
	require.NoError(t, err)

	calc, err := NewCalculator(st.EventStore(), 15)
	require.NoError(t, err)

	tokenTotal, err := calc.TokenTotalFor(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(850), tokenTotal)

	nativeTotal, err := calc.NativeTotalFor(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), nativeTotal)
}
