package reshape

import "strings"

// SuffixSet is the explicit association between the models requested and
// the column suffixes the response will carry. It is built from the
// request rather than inferred from column names, so an underscore inside
// a variable name can never be misread as a model boundary. Ensemble
// member suffixes (_memberNN) are the one exception: the API decides the
// member count, so they are recognized by shape.
type SuffixSet struct {
	models  []string
	members bool
}

// NewSuffixSet builds the suffix association for a request. models is the
// list passed with --models; members enables _memberNN recognition for
// ensemble responses.
func NewSuffixSet(models []string, members bool) SuffixSet {
	return SuffixSet{models: models, members: members}
}

// Empty reports whether no suffix stripping applies at all.
func (s SuffixSet) Empty() bool {
	return len(s.models) == 0 && !s.members
}

// Split separates a response column into its base variable name and the
// model/member label. Columns without a recognized suffix belong to the
// base run and return label "".
func (s SuffixSet) Split(column string) (base, label string) {
	base = column
	if s.members {
		if b, member, ok := cutMember(base); ok {
			base = b
			label = member
		}
	}
	for _, m := range s.models {
		if b, found := strings.CutSuffix(base, "_"+m); found {
			base = b
			if label == "" {
				label = m
			} else {
				label = m + " " + label
			}
			break
		}
	}
	return base, label
}

// cutMember strips a trailing _memberNN (two or more digits) suffix.
func cutMember(column string) (base, member string, ok bool) {
	idx := strings.LastIndex(column, "_member")
	if idx < 0 {
		return column, "", false
	}
	digits := column[idx+len("_member"):]
	if len(digits) < 2 {
		return column, "", false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return column, "", false
		}
	}
	return column[:idx], "member" + digits, true
}
