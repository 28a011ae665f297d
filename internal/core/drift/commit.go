package drift

import (
	"fmt"
	"strings"

	"predeploy.dev/cli/internal/core/confignode"
)

// CommitField is the top-level key holding a snapshot's deployed commit
const CommitField = "commit"

// CommitStatus is the outcome of comparing an environment's commit with production.
type CommitStatus struct {
	Env        string
	Commit     string
	ProdCommit string
	UpToDate   bool
}

// CheckCommit compares the commit field of target against prod. This is a
// plain equality check, not a structural diff. A missing commit renders as
// "undefined", and two missing commits are considered equal.
func CheckCommit(env string, prod, target *confignode.Node) CommitStatus {
	prodValue, _ := prod.Get(CommitField)
	targetValue, _ := target.Get(CommitField)

	return CommitStatus{
		Env:        strings.ToUpper(env),
		Commit:     commitText(targetValue),
		ProdCommit: commitText(prodValue),
		UpToDate:   prodValue.Equal(targetValue),
	}
}

// String renders the status as a single report line.
func (s CommitStatus) String() string {
	if s.UpToDate {
		return fmt.Sprintf("%s %s is up-to-date with PROD (%s)", IconSuccess, s.Env, s.Commit)
	}
	return fmt.Sprintf("%s %s commit (%s) is behind PROD (%s)", IconError, s.Env, s.Commit, s.ProdCommit)
}

func commitText(v confignode.Value) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return v.String()
}
