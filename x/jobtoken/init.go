package jobtoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ ledger.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial job postings from the genesis and issue a
// token for each of them, in order. Genesis tokens carry a zero timestamp as
// there is no block time before the first block.
func (*Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	var postings []struct {
		Owner        ledger.Address `json:"owner"`
		JobID        string         `json:"job_id"`
		Title        string         `json:"title"`
		Company      string         `json:"company"`
		Requirements string         `json:"requirements"`
	}
	if err := opts.ReadOptions("jobtoken", &postings); err != nil {
		return errors.Wrap(err, "jobtoken options")
	}
	ctrl := NewController()
	for i, p := range postings {
		if _, err := ctrl.Issue(db, p.Owner, 0, p.JobID, p.Title, p.Company, p.Requirements); err != nil {
			return errors.Wrapf(err, "posting #%d", i)
		}
	}
	return nil
}
