package dxf

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r Reader) ([]Record, error) {
	t.Helper()
	var out []Record
	for {
		if err := r.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, r.Record())
	}
}

func TestTextReader(t *testing.T) {
	in := "\ufeff  0\r\nSECTION\r\n  2\r\nHEADER\r\n  9\n$ACADVER\n  1\nAC1027 \n"
	recs, err := readAll(t, NewTextReader(strings.NewReader(in)))
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, Record{Code: 0, Value: "SECTION", Line: 1}, recs[0])
	assert.Equal(t, 3, recs[1].Line)
	assert.True(t, recs[0].Is(CodeStart, TokenSection))
	assert.Equal(t, "AC1027 ", recs[3].Value)
	assert.Equal(t, "AC1027", recs[3].Token())
}

func TestTextReaderErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want error
	}{
		{"missing value", "  0\nSECTION\n  2\n", io.ErrUnexpectedEOF},
		{"binary", "AutoCAD Binary DXF\r\n\x1a\x00", ErrBinary},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := readAll(t, NewTextReader(strings.NewReader(tc.in)))
			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("bad group code", func(t *testing.T) {
		recs, err := readAll(t, NewTextReader(strings.NewReader("  0\nSECTION\nabc\nHEADER\n")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Len(t, recs, 1)
	})
}

func TestRecordDecoders(t *testing.T) {
	n, err := Record{Code: 70, Value: " 12"}.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = Record{Code: 70, Value: "4.0"}.Int()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = Record{Code: 70, Value: "4.5"}.Int()
	assert.Error(t, err)

	f, err := Record{Code: 40, Value: "2.5"}.Float()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	b, err := Record{Code: 290, Value: "1"}.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	h, err := Record{Code: 5, Value: "1F"}.Handle()
	require.NoError(t, err)
	assert.EqualValues(t, 0x1F, h)

	_, err = Record{Code: 5, Value: "zz"}.Handle()
	assert.Error(t, err)
}

func TestRecordReaderAndWriteText(t *testing.T) {
	recs := Pairs(0, "SECTION", 2, "ENTITIES", 0, "ENDSEC", 0, "EOF")
	got, err := readAll(t, NewRecordReader(recs...))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 7, got[3].Line)

	var sb strings.Builder
	require.NoError(t, WriteText(&sb, recs))
	back, err := readAll(t, NewTextReader(strings.NewReader(sb.String())))
	require.NoError(t, err)
	assert.Equal(t, got, back)
}
