package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"anonboard/adapter/data"
	"anonboard/domain"
)

type M = data.M

type A = []any

type MatcherTestSuite struct {
	suite.Suite
	mtchr domain.Matcher
}

func (s *MatcherTestSuite) SetupTest() {
	s.mtchr = NewMatcher()
}

func (s *MatcherTestSuite) Matches(matches bool, err error) {
	s.NoError(err)
	s.True(matches)
}

func (s *MatcherTestSuite) NotMatches(matches bool, err error) {
	s.NoError(err)
	s.False(matches)
}

// A nil or empty filter matches every document.
func (s *MatcherTestSuite) TestEmptyFilter() {
	s.Matches(s.mtchr.Match(M{"a": 1}, nil))
	s.Matches(s.mtchr.Match(M{"a": 1}, M{}))
	s.Matches(s.mtchr.Match(M{}, M{}))
}

// Can match documents by simple field equality.
func (s *MatcherTestSuite) TestSimpleFieldEquality() {
	s.Matches(s.mtchr.Match(M{"test": "yeah"}, M{"test": "yeah"}))
	s.NotMatches(s.mtchr.Match(M{"test": "yea"}, M{"test": "yeah"}))
	s.NotMatches(s.mtchr.Match(M{"test": "yeahh"}, M{"test": "yeah"}))
}

// Numbers match across Go numeric types.
func (s *MatcherTestSuite) TestNumericEquality() {
	s.Matches(s.mtchr.Match(M{"n": 5}, M{"n": 5.0}))
	s.Matches(s.mtchr.Match(M{"n": int64(5)}, M{"n": 5}))
	s.NotMatches(s.mtchr.Match(M{"n": 5}, M{"n": 6}))
}

// Every filter key must hold for a match; one mismatch fails the document.
func (s *MatcherTestSuite) TestConjunction() {
	doc := M{"board": "general", "_id": "t1"}

	s.Matches(s.mtchr.Match(doc, M{"board": "general", "_id": "t1"}))
	s.NotMatches(s.mtchr.Match(doc, M{"board": "general", "_id": "t2"}))
	s.NotMatches(s.mtchr.Match(doc, M{"board": "random", "_id": "t1"}))
}

// A missing field never matches, whatever the wanted value.
func (s *MatcherTestSuite) TestMissingField() {
	s.NotMatches(s.mtchr.Match(M{"a": 1}, M{"b": 1}))
	s.NotMatches(s.mtchr.Match(M{}, M{"b": "x"}))
}

// A nil filter value is no constraint at all, not an equality with null.
func (s *MatcherTestSuite) TestNilValueNoConstraint() {
	s.Matches(s.mtchr.Match(M{"a": 1}, M{"b": nil}))
	s.Matches(s.mtchr.Match(M{"a": 1}, M{"a": 1, "b": nil}))
	s.NotMatches(s.mtchr.Match(M{"a": 2}, M{"a": 1, "b": nil}))
}

// Values of different kinds never match, and never error.
func (s *MatcherTestSuite) TestMismatchedTypes() {
	s.NotMatches(s.mtchr.Match(M{"a": 1}, M{"a": "1"}))
	s.NotMatches(s.mtchr.Match(M{"a": true}, M{"a": "true"}))
	s.NotMatches(s.mtchr.Match(M{"a": []int{}}, M{"a": []int{}}))
}

// Can match a document when a nested array holds an element with the wanted
// identifier.
func (s *MatcherTestSuite) TestArrayMembership() {
	doc := M{
		"_id": "t1",
		"replies": A{
			M{"_id": "r1", "text": "first"},
			M{"_id": "r2", "text": "second"},
		},
	}

	s.Matches(s.mtchr.Match(doc, M{"replies._id": "r1"}))
	s.Matches(s.mtchr.Match(doc, M{"replies._id": "r2"}))
	s.NotMatches(s.mtchr.Match(doc, M{"replies._id": "r3"}))

	s.Matches(s.mtchr.Match(doc, M{"_id": "t1", "replies._id": "r2"}))
	s.NotMatches(s.mtchr.Match(doc, M{"_id": "t2", "replies._id": "r2"}))
}

// Membership requires an array field; anything else does not match.
func (s *MatcherTestSuite) TestMembershipNonArray() {
	s.NotMatches(s.mtchr.Match(M{"replies": "nope"}, M{"replies._id": "r1"}))
	s.NotMatches(s.mtchr.Match(M{"replies": M{"_id": "r1"}}, M{"replies._id": "r1"}))
	s.NotMatches(s.mtchr.Match(M{}, M{"replies._id": "r1"}))
}

// Non-document elements and elements without a string identifier are
// skipped.
func (s *MatcherTestSuite) TestMembershipSkipsOddElements() {
	doc := M{"replies": A{"scalar", M{"text": "no id"}, M{"_id": 42}, M{"_id": "r9"}}}

	s.Matches(s.mtchr.Match(doc, M{"replies._id": "r9"}))
	s.NotMatches(s.mtchr.Match(doc, M{"replies._id": "42"}))
}

// Identifiers compare by exact string equality only.
func (s *MatcherTestSuite) TestMembershipWantsString() {
	doc := M{"replies": A{M{"_id": "7"}}}

	s.Matches(s.mtchr.Match(doc, M{"replies._id": "7"}))
	s.NotMatches(s.mtchr.Match(doc, M{"replies._id": 7}))
}

// Dotted keys outside the membership shape are rejected.
func (s *MatcherTestSuite) TestUnsupportedDottedKeys() {
	_, err := s.mtchr.Match(M{"a": M{"b": 1}}, M{"a.b": 1})
	s.ErrorAs(err, &domain.ErrFilterKey{})

	_, err = s.mtchr.Match(M{}, M{"a.b._id": "x"})
	s.ErrorAs(err, &domain.ErrFilterKey{})

	_, err = s.mtchr.Match(M{}, M{"._id": "x"})
	s.ErrorAs(err, &domain.ErrFilterKey{})
}

// Dates match by instant.
func (s *MatcherTestSuite) TestDates() {
	d := time.UnixMilli(123456)

	s.Matches(s.mtchr.Match(M{"when": d}, M{"when": time.UnixMilli(123456)}))
	s.NotMatches(s.mtchr.Match(M{"when": d}, M{"when": time.UnixMilli(123457)}))
}

func TestMatcherTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherTestSuite))
}
