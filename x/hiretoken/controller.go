package hiretoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
)

// Controller bundles the business logic of the hire registry.
type Controller struct {
	tokens TokenBucket
}

// NewController returns a controller with a freshly initialized bucket.
func NewController() Controller {
	return Controller{tokens: NewTokenBucket()}
}

// Mint records a new hire and returns the id of the minted token. Ids are
// handed out sequentially starting from zero. Minting takes no preconditions
// and records the input verbatim.
func (c Controller) Mint(db ledger.KVStore, developer ledger.Address, jobID, company, title, uri string) (int64, error) {
	id, err := c.tokens.Supply(db)
	if err != nil {
		return 0, err
	}
	token := &HireToken{
		Owner:   developer,
		JobID:   jobID,
		Company: company,
		Title:   title,
		URI:     uri,
	}
	if err := c.tokens.Save(db, c.tokens.Build(id, token)); err != nil {
		return 0, err
	}
	if _, err := c.tokens.BumpSupply(db); err != nil {
		return 0, err
	}
	return id, nil
}

// TokenOwner returns the owner of the token, or a nil address when the id
// was never minted.
func (c Controller) TokenOwner(db ledger.ReadOnlyKVStore, id int64) (ledger.Address, error) {
	obj, err := c.tokens.GetToken(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return AsHireToken(obj).Owner, nil
}

// TokenURI returns the metadata reference of the token, or an empty string
// when the id was never minted.
func (c Controller) TokenURI(db ledger.ReadOnlyKVStore, id int64) (string, error) {
	obj, err := c.tokens.GetToken(db, id)
	if err != nil {
		return "", err
	}
	if obj == nil {
		return "", nil
	}
	return AsHireToken(obj).URI, nil
}

// TokenInfo returns the full record of the token, or a zero value when the
// id was never minted.
func (c Controller) TokenInfo(db ledger.ReadOnlyKVStore, id int64) (HireToken, error) {
	obj, err := c.tokens.GetToken(db, id)
	if err != nil {
		return HireToken{}, err
	}
	if obj == nil {
		return HireToken{}, nil
	}
	return *AsHireToken(obj), nil
}

// TotalSupply returns the number of tokens minted so far.
func (c Controller) TotalSupply(db ledger.ReadOnlyKVStore) (int64, error) {
	return c.tokens.Supply(db)
}
