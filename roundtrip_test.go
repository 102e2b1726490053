package bcd_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd"
	"github.com/calebcase/oops"
)

func TestRoundtrip(t *testing.T) {
	t.Run("stream", func(t *testing.T) {
		inputs := []string{
			"0",
			"01.5",
			"-0",
			"7",
			"-8",
			"123",
			"+10.01",
			"99.9",
			"+1234.56789",
			"-99084.566",
		}

		parsed := []*bcd.Decimal{}
		output := &bytes.Buffer{}
		e := bcd.NewEncoder(output)

		for _, input := range inputs {
			v, ok := bcd.Parse(input)
			require.True(t, ok, input)

			err := e.Encode(v)
			require.NoError(t, err, input)

			parsed = append(parsed, v)
		}

		t.Logf("stream=%02x", output.Bytes())

		d := bcd.NewDecoder(output)

		for i, want := range parsed {
			v := &bcd.Decimal{}

			err := d.Decode(v)
			require.NoError(t, err, inputs[i])
			require.Equal(t, want, v, inputs[i])
		}

		v := &bcd.Decimal{}
		require.Equal(t, io.EOF, d.Decode(v))
	})

	t.Run("binary", func(t *testing.T) {
		type TC struct {
			Input string
			Mark  error
		}

		tcs := []TC{
			{
				Input: "0",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "7",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "-99084.566",
				Mark:  oops.New("unexpected"),
			},
			{
				Input: "+1234.56789",
				Mark:  oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				want, ok := bcd.Parse(tc.Input)
				require.True(t, ok, tc.Mark)

				data, err := want.MarshalBinary()
				require.NoError(t, err, tc.Mark)

				got := &bcd.Decimal{}
				err = got.UnmarshalBinary(data)
				require.NoError(t, err, tc.Mark)

				require.Equal(t, want, got, tc.Mark)
			})
		}
	})
}
