package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfagnish/trading-app/internal/domain"
)

func tradeIDs(trades []domain.Trade) []int64 {
	ids := make([]int64, len(trades))
	for i, t := range trades {
		ids[i] = t.ID
	}
	return ids
}

func TestSeeded(t *testing.T) {
	s, err := Seeded()
	require.NoError(t, err)

	assert.Equal(t, 4, s.Directory.Len())
	assert.Equal(t, 3, s.Accounts.Len())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tradeIDs(s.Trades.All()))

	michael := s.Directory.Get(4)
	require.Len(t, michael, 1)
	assert.Equal(t, "Michael", michael[0].Name)
	require.Len(t, michael[0].Degree, 1)
	assert.Equal(t, domain.DegreeExpert, michael[0].Degree[0].TypeDegree)

	assert.Empty(t, s.Accounts.Get(4))
}

func TestTradeStore_Window(t *testing.T) {
	s, err := Seeded()
	require.NoError(t, err)

	testTable := []struct {
		name   string
		offset int64
		limit  int64
		expect []int64
	}{
		{name: "defaults", offset: 0, limit: 2, expect: []int64{1, 2}},
		{name: "tail shorter than limit", offset: 8, limit: 3, expect: []int64{9, 10}},
		{name: "offset past end", offset: 50, limit: 2, expect: []int64{}},
		{name: "offset at end", offset: 10, limit: 2, expect: []int64{}},
		{name: "zero limit", offset: 0, limit: 0, expect: []int64{}},
		{name: "negative offset counts from end", offset: -2, limit: 5, expect: []int64{9, 10}},
		{name: "negative offset beyond start", offset: -100, limit: 1, expect: []int64{1}},
		{name: "negative limit drops from end", offset: 6, limit: -1, expect: []int64{7, 8, 9}},
		{name: "negative limit beyond start", offset: 0, limit: -20, expect: []int64{}},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expect, tradeIDs(s.Trades.Window(testCase.offset, testCase.limit)))
		})
	}
}

func TestTradeStore_Append(t *testing.T) {
	s := NewTradeStore([]domain.Trade{{ID: 1, Currency: "BTC"}})

	all := s.Append(domain.Trade{ID: 1, Currency: "ETH"}, domain.Trade{ID: 2, Currency: "BNB"})
	assert.Equal(t, []int64{1, 1, 2}, tradeIDs(all))
	assert.Equal(t, 3, s.Len())

	all[0].Currency = "XXX"
	assert.Equal(t, "BTC", s.All()[0].Currency, "returned slice must not alias the store")
}

func TestUserStore_Rename(t *testing.T) {
	s := NewUserStore([]domain.User{
		{ID: 2, Role: "investor", Name: "Julia", Degree: []domain.Degree{}},
		{ID: 2, Role: "trader", Name: "Julia2", Degree: []domain.Degree{}},
	})

	u, err := s.Rename(2, "Anna")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 2, Role: "investor", Name: "Anna", Degree: []domain.Degree{}}, u)

	all := s.All()
	assert.Equal(t, "Anna", all[0].Name)
	assert.Equal(t, "Julia2", all[1].Name, "only the first match is renamed")

	_, err = s.Rename(999, "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_CollectionsAreIndependent(t *testing.T) {
	s, err := Seeded()
	require.NoError(t, err)

	_, err = s.Accounts.Rename(2, "Anna")
	require.NoError(t, err)

	assert.Equal(t, "Anna", s.Accounts.Get(2)[0].Name)
	assert.Equal(t, "Julia", s.Directory.Get(2)[0].Name)
}

func TestUserStore_GetReturnsCopies(t *testing.T) {
	s := NewUserStore([]domain.User{{ID: 4, Name: "Michael", Degree: []domain.Degree{{ID: 1, TypeDegree: domain.DegreeExpert}}}})

	got := s.Get(4)
	got[0].Name = "changed"
	got[0].Degree[0].TypeDegree = domain.DegreeNewbie

	again := s.Get(4)
	assert.Equal(t, "Michael", again[0].Name)
	assert.Equal(t, domain.DegreeExpert, again[0].Degree[0].TypeDegree)
	assert.Equal(t, []domain.User{}, s.Get(999))
}
