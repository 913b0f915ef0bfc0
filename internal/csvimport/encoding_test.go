package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestDecodeAuto_UTF8PassesThrough(t *testing.T) {
	in := "商品名,金額\nルイヴィトン 長財布,11000\n"
	out, err := DecodeAuto([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeAuto_StripsBOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("item_name,buy_total\n")...)
	out, err := DecodeAuto(in)
	require.NoError(t, err)
	assert.Equal(t, "item_name,buy_total\n", out)
}

func TestDecodeAuto_ShiftJIS(t *testing.T) {
	want := "商品名,ブランド名\nセリーヌ ラゲージ,330000\n"
	sjis, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), want)
	require.NoError(t, err)

	out, err := DecodeAuto([]byte(sjis))
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestDecodeAuto_PlainASCII(t *testing.T) {
	in := "a,b,c\n1,2,3\n"
	out, err := DecodeAuto([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
