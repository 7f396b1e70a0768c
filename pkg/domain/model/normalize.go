package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
)

// RawRecord is a repository record as decoded from JSON, before validation
type RawRecord map[string]any

// recordKeys lists accepted key names for each field. The first present key wins.
type recordKeys struct {
	id            []string
	fullName      []string
	description   []string
	language      []string
	forksCount    []string
	isFork        []string
	createdAt     []string
	defaultBranch []string
	branchRefs    []string
}

var remoteKeys = recordKeys{
	id:            []string{"id"},
	fullName:      []string{"full_name"},
	description:   []string{"description"},
	language:      []string{"language"},
	forksCount:    []string{"forks_count"},
	isFork:        []string{"fork"},
	createdAt:     []string{"created_at"},
	defaultBranch: []string{"default_branch"},
	branchRefs:    []string{"branches_url"},
}

// Curated local datasets are either GitHub API dumps or hand-written with camelCase keys
var localKeys = recordKeys{
	id:            []string{"id"},
	fullName:      []string{"full_name", "fullName"},
	description:   []string{"description"},
	language:      []string{"language"},
	forksCount:    []string{"forks_count", "forksCount"},
	isFork:        []string{"fork", "isFork"},
	createdAt:     []string{"created_at", "createdAt"},
	defaultBranch: []string{"default_branch", "defaultBranch"},
	branchRefs:    []string{"branches_url", "branchesUrl"},
}

func keysFor(origin types.Origin) (recordKeys, error) {
	switch origin {
	case types.OriginLocal:
		return localKeys, nil
	case types.OriginRemote:
		return remoteKeys, nil
	default:
		return recordKeys{}, goerr.Wrap(types.ErrInvalidOption, "unknown origin", goerr.V("origin", origin))
	}
}

func (x RawRecord) lookup(keys []string) (any, string, bool) {
	for _, key := range keys {
		if v, ok := x[key]; ok && v != nil {
			return v, key, true
		}
	}
	return nil, keys[0], false
}

func (x RawRecord) optionalString(keys []string) *string {
	v, _, ok := x.lookup(keys)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// NormalizeRecord converts a raw record of the origin into a Repository. It returns an error wrapping types.ErrShape when a required field (id, full name, created at, fork flag) is missing or of a wrong type.
func NormalizeRecord(origin types.Origin, raw RawRecord) (*Repository, error) {
	keys, err := keysFor(origin)
	if err != nil {
		return nil, err
	}

	shapeErr := func(msg, field string, value any) error {
		return goerr.Wrap(types.ErrShape, msg,
			goerr.V("origin", origin),
			goerr.V("field", field),
			goerr.V("value", value),
		)
	}

	idValue, idKey, ok := raw.lookup(keys.id)
	if !ok {
		return nil, shapeErr("missing required field", idKey, nil)
	}
	id, ok := toRepoID(idValue)
	if !ok {
		return nil, shapeErr("invalid repository ID", idKey, idValue)
	}

	nameValue, nameKey, ok := raw.lookup(keys.fullName)
	if !ok {
		return nil, shapeErr("missing required field", nameKey, nil)
	}
	fullName, ok := nameValue.(string)
	if !ok || !validFullName(fullName) {
		return nil, shapeErr("invalid full name, should be <owner>/<name>", nameKey, nameValue)
	}

	createdValue, createdKey, ok := raw.lookup(keys.createdAt)
	if !ok {
		return nil, shapeErr("missing required field", createdKey, nil)
	}
	createdAt, ok := createdValue.(string)
	if !ok || createdAt == "" {
		return nil, shapeErr("invalid created at", createdKey, createdValue)
	}

	forkValue, forkKey, ok := raw.lookup(keys.isFork)
	if !ok {
		return nil, shapeErr("missing required field", forkKey, nil)
	}
	isFork, ok := forkValue.(bool)
	if !ok {
		return nil, shapeErr("invalid fork flag", forkKey, forkValue)
	}

	var forksCount int
	if v, key, ok := raw.lookup(keys.forksCount); ok {
		n, ok := toInt(v)
		if ok && n < 0 {
			return nil, shapeErr("negative forks count", key, v)
		}
		forksCount = n
	}

	repo := &Repository{
		ID:          id,
		FullName:    types.FullName(fullName),
		Description: raw.optionalString(keys.description),
		Language:    raw.optionalString(keys.language),
		ForksCount:  forksCount,
		IsFork:      isFork,
		CreatedAt:   createdAt,
		Origin:      origin,
	}
	if branch := raw.optionalString(keys.defaultBranch); branch != nil {
		repo.DefaultBranch = types.BranchName(*branch)
	}
	if tmpl := raw.optionalString(keys.branchRefs); tmpl != nil {
		repo.BranchRefTemplate = *tmpl
	}

	return repo, nil
}

func validFullName(name string) bool {
	owner, repo, ok := strings.Cut(name, "/")
	return ok && owner != "" && repo != "" && !strings.Contains(repo, "/")
}

func toRepoID(v any) (types.RepoID, bool) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return types.RepoID(id), true
	case json.Number:
		if _, err := id.Int64(); err != nil {
			return "", false
		}
		return types.RepoID(id.String()), true
	default:
		n, ok := toInt64(v)
		if !ok {
			return "", false
		}
		return types.RepoID(strconv.FormatInt(n, 10)), true
	}
}

func toInt(v any) (int, bool) {
	n, ok := toInt64(v)
	return int(n), ok
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= 1<<63 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
