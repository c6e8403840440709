package store

import (
	"embed"
	"fmt"

	"github.com/alfagnish/trading-app/internal/schema"
)

//go:embed seed/*.json
var seedFS embed.FS

// Store groups the collections served by the API.
//
// Directory and Accounts are two independent user lists: lookups read
// Directory, renames write Accounts, and a rename is never visible through a
// lookup. They are kept apart on purpose and must not be merged without
// agreeing on which list is authoritative.
type Store struct {
	Directory *UserStore
	Accounts  *UserStore
	Trades    *TradeStore
}

// Seeded builds a Store from the embedded seed files. Every file goes
// through the same schema checks as client input.
func Seeded() (*Store, error) {
	directory, err := seedUsers("directory.json")
	if err != nil {
		return nil, err
	}
	accounts, err := seedUsers("accounts.json")
	if err != nil {
		return nil, err
	}

	data, err := seedFS.ReadFile("seed/trades.json")
	if err != nil {
		return nil, fmt.Errorf("read trade seed: %w", err)
	}
	trades, err := schema.DecodeTrades(data, "trades.json")
	if err != nil {
		return nil, fmt.Errorf("decode trade seed: %w", err)
	}

	return &Store{
		Directory: directory,
		Accounts:  accounts,
		Trades:    NewTradeStore(trades),
	}, nil
}

func seedUsers(name string) (*UserStore, error) {
	data, err := seedFS.ReadFile("seed/" + name)
	if err != nil {
		return nil, fmt.Errorf("read user seed %s: %w", name, err)
	}
	users, err := schema.DecodeUsers(data, name)
	if err != nil {
		return nil, fmt.Errorf("decode user seed %s: %w", name, err)
	}
	return NewUserStore(users), nil
}
