package decoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"anonboard/adapter/data"
	"anonboard/domain"
)

type M = data.M

type DecoderTestSuite struct {
	suite.Suite
	dec domain.Decoder
}

func (s *DecoderTestSuite) SetupTest() {
	s.dec = NewDecoder()
}

// Documents decode into structs through the "doc" tag, nested arrays
// included.
func (s *DecoderTestSuite) TestDecodeStruct() {
	type reply struct {
		ID   string `doc:"_id"`
		Text string `doc:"text"`
	}
	type thread struct {
		ID      string    `doc:"_id"`
		Text    string    `doc:"text"`
		Created time.Time `doc:"created_on"`
		Replies []reply   `doc:"replies"`
	}

	now := time.Now()
	src := M{
		"_id":        "t1",
		"text":       "hello",
		"created_on": now,
		"replies":    []any{M{"_id": "r1", "text": "hi"}},
	}

	var t thread
	s.NoError(s.dec.Decode(src, &t))
	s.Equal("t1", t.ID)
	s.Equal("hello", t.Text)
	s.Equal(now, t.Created)
	s.Len(t.Replies, 1)
	s.Equal("r1", t.Replies[0].ID)
}

// A document slice decodes into a struct slice.
func (s *DecoderTestSuite) TestDecodeSlice() {
	type item struct {
		N int `doc:"n"`
	}
	src := []domain.Document{M{"n": 1}, M{"n": 2}}

	var items []item
	s.NoError(s.dec.Decode(src, &items))
	s.Equal([]item{{N: 1}, {N: 2}}, items)
}

// Fields absent from the document keep their zero values.
func (s *DecoderTestSuite) TestMissingFields() {
	type target struct {
		A string `doc:"a"`
		B int    `doc:"b"`
	}

	var t target
	s.NoError(s.dec.Decode(M{"a": "x"}, &t))
	s.Equal("x", t.A)
	s.Zero(t.B)
}

// A nil target is rejected.
func (s *DecoderTestSuite) TestNilTarget() {
	s.ErrorIs(s.dec.Decode(M{"a": 1}, nil), domain.ErrTargetNil)
}

func TestDecoderTestSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}
