package group

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/famoser/post-evoting-sub013/big"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGroup(t *testing.T) *Group {
	grp, err := NewGroup(big.NewInt(23), big.NewInt(11), big.NewInt(2))
	require.NoError(t, err)
	return grp
}

func otherGroup(t *testing.T) *Group {
	grp, err := NewGroup(big.NewInt(47), big.NewInt(23), big.NewInt(2))
	require.NoError(t, err)
	return grp
}

func TestNewGroup(t *testing.T) {
	grp := smallGroup(t)
	assert.Equal(t, int64(23), grp.P().Int64())
	assert.Equal(t, int64(11), grp.Q().Int64())
	assert.Equal(t, int64(2), grp.G().Int64())
	assert.Equal(t, int64(1), grp.Identity().Value().Int64())
	assert.Equal(t, int64(2), grp.Generator().Value().Int64())

	// accessors hand out copies
	grp.P().SetInt64(5)
	assert.Equal(t, int64(23), grp.P().Int64())
}

func TestNewGroupInvalid(t *testing.T) {
	cases := []struct {
		name    string
		p, q, g *big.Int
	}{
		{"nil", nil, big.NewInt(11), big.NewInt(2)},
		{"small modulus", big.NewInt(2), big.NewInt(11), big.NewInt(2)},
		{"order too large", big.NewInt(23), big.NewInt(23), big.NewInt(2)},
		{"trivial generator", big.NewInt(23), big.NewInt(11), big.NewInt(1)},
		{"generator outside subgroup", big.NewInt(23), big.NewInt(11), big.NewInt(5)},
	}
	for _, c := range cases {
		_, err := NewGroup(c.p, c.q, c.g)
		assert.True(t, errors.Is(err, ErrInvalidArgument), c.name)
	}
}

func TestGroupEqual(t *testing.T) {
	a, b := smallGroup(t), smallGroup(t)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(otherGroup(t)))
	assert.False(t, a.Equal(nil))
}

func TestNewElement(t *testing.T) {
	grp := smallGroup(t)
	for _, v := range []int64{1, 2, 3, 4, 6, 8, 9, 12, 13, 16, 18} {
		e, err := grp.NewElement(big.NewInt(v))
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, e.Value().Int64())
		assert.True(t, grp.IsMember(big.NewInt(v)))
	}

	_, err := grp.NewElement(big.NewInt(5))
	assert.True(t, errors.Is(err, ErrNotMember))
	_, err = grp.NewElement(big.NewInt(0))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = grp.NewElement(big.NewInt(23))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = grp.NewElement(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestElementOperations(t *testing.T) {
	grp := smallGroup(t)
	two, _ := grp.NewElement(big.NewInt(2))
	three, _ := grp.NewElement(big.NewInt(3))

	six, err := two.Multiply(three)
	require.NoError(t, err)
	assert.Equal(t, int64(6), six.Value().Int64())

	inv := two.Invert()
	assert.Equal(t, int64(12), inv.Value().Int64())
	prod, err := inv.Multiply(two)
	require.NoError(t, err)
	assert.True(t, prod.Equal(grp.Identity()))

	x, _ := grp.NewExponent(big.NewInt(3))
	eight, err := two.Exponentiate(x)
	require.NoError(t, err)
	assert.Equal(t, int64(8), eight.Value().Int64())

	zero, _ := grp.NewExponent(big.NewInt(0))
	one, err := three.Exponentiate(zero)
	require.NoError(t, err)
	assert.True(t, one.Equal(grp.Identity()))
}

func TestElementMismatch(t *testing.T) {
	grp, other := smallGroup(t), otherGroup(t)
	a, _ := grp.NewElement(big.NewInt(2))
	b, _ := other.NewElement(big.NewInt(2))

	_, err := a.Multiply(b)
	assert.True(t, errors.Is(err, ErrGroupMismatch))
	assert.False(t, a.Equal(b))

	x, err := NewExponent(big.NewInt(12), big.NewInt(3))
	require.NoError(t, err)
	_, err = a.Exponentiate(x)
	assert.True(t, errors.Is(err, ErrGroupMismatch))

	// Same parameters, different Group values: still compatible.
	c, _ := smallGroup(t).NewElement(big.NewInt(3))
	_, err = a.Multiply(c)
	assert.NoError(t, err)
	y, _ := smallGroup(t).NewExponent(big.NewInt(4))
	_, err = a.Exponentiate(y)
	assert.NoError(t, err)
}

func TestExponent(t *testing.T) {
	grp := smallGroup(t)
	seven, _ := grp.NewExponent(big.NewInt(7))
	six, _ := grp.NewExponent(big.NewInt(6))
	three, _ := grp.NewExponent(big.NewInt(3))
	five, _ := grp.NewExponent(big.NewInt(5))

	sum, err := seven.Add(six)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Value().Int64())

	diff, err := three.Subtract(five)
	require.NoError(t, err)
	assert.Equal(t, int64(9), diff.Value().Int64())

	prod, err := three.Multiply(five)
	require.NoError(t, err)
	assert.Equal(t, int64(4), prod.Value().Int64())

	assert.Equal(t, int64(8), three.Negate().Value().Int64())
	zero, err := sum.Subtract(sum)
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Value().Int64())
}

func TestExponentInvalid(t *testing.T) {
	grp := smallGroup(t)
	_, err := grp.NewExponent(big.NewInt(11))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = grp.NewExponent(big.NewInt(-1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewExponent(big.NewInt(1), big.NewInt(0))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewExponent(nil, big.NewInt(0))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	reduced, err := grp.ReduceExponent(big.NewInt(-1))
	require.NoError(t, err)
	assert.Equal(t, int64(10), reduced.Value().Int64())
	reduced, err = grp.ReduceExponent(big.NewInt(25))
	require.NoError(t, err)
	assert.Equal(t, int64(3), reduced.Value().Int64())
}

func TestExponentMismatch(t *testing.T) {
	a, _ := NewExponent(big.NewInt(11), big.NewInt(3))
	b, _ := NewExponent(big.NewInt(12), big.NewInt(3))

	_, err := a.Add(b)
	assert.True(t, errors.Is(err, ErrGroupMismatch))
	_, err = a.Subtract(b)
	assert.True(t, errors.Is(err, ErrGroupMismatch))
	_, err = a.Multiply(b)
	assert.True(t, errors.Is(err, ErrGroupMismatch))
	_, err = a.Add(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, a.Equal(b))

	c, _ := NewExponent(big.NewInt(11), big.NewInt(3))
	assert.True(t, a.Equal(c))
}

func TestFixedBase(t *testing.T) {
	grp := otherGroup(t)
	base, err := grp.NewElement(big.NewInt(3))
	require.NoError(t, err)
	fb, err := NewFixedBase(base, 3)
	require.NoError(t, err)
	assert.True(t, fb.Element().Equal(base))

	for i := int64(0); i < 23; i++ {
		x, _ := grp.NewExponent(big.NewInt(i))
		expected, err := base.Exponentiate(x)
		require.NoError(t, err)
		actual, err := fb.Exponentiate(x)
		require.NoError(t, err)
		assert.True(t, expected.Equal(actual), "3^%d", i)
	}

	wrong, _ := NewExponent(big.NewInt(11), big.NewInt(1))
	_, err = fb.Exponentiate(wrong)
	assert.True(t, errors.Is(err, ErrGroupMismatch))
}

type constantSource struct{ v int64 }

func (c constantSource) RandomInt(*big.Int) (*big.Int, error) { return big.NewInt(c.v), nil }

func TestRandomExponent(t *testing.T) {
	grp := smallGroup(t)
	for _, src := range []RandomSource{CryptoRandom{}, FastRandom{}} {
		for i := 0; i < 100; i++ {
			x, err := grp.RandomExponent(src)
			require.NoError(t, err)
			assert.True(t, x.Value().Sign() >= 0 && x.Value().Cmp(grp.Q()) < 0)
		}
	}

	_, err := grp.RandomExponent(constantSource{11})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = grp.RandomExponent(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = CryptoRandom{}.RandomInt(big.NewInt(0))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestParamsXML(t *testing.T) {
	grp := smallGroup(t)
	var buf bytes.Buffer
	_, err := grp.Params().WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<p>23</p>")

	parsed, err := NewGroupFromXML(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, grp.Equal(parsed))
}

func TestParamsJSON(t *testing.T) {
	parsed, err := NewGroupFromJSON([]byte(`{"p": "23", "q": "11", "g": 2}`))
	require.NoError(t, err)
	assert.True(t, smallGroup(t).Equal(parsed))

	_, err = NewGroupFromJSON([]byte(`{"p": "23", "q": "11", "g": "5"}`))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewGroupFromJSON([]byte(`{"p": "23", "q": "11"}`))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestParamsFile(t *testing.T) {
	dir := t.TempDir()
	grp := otherGroup(t)

	xmlFile := filepath.Join(dir, "group.xml")
	_, err := grp.Params().WriteToFile(xmlFile, false)
	require.NoError(t, err)
	_, err = grp.Params().WriteToFile(xmlFile, false)
	assert.Error(t, err, "overwrote existing file")

	parsed, err := NewGroupFromFile(xmlFile)
	require.NoError(t, err)
	assert.True(t, grp.Equal(parsed))

	jsonFile := filepath.Join(dir, "group.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"p":"47","q":"23","g":"2"}`), 0600))
	parsed, err = NewGroupFromFile(jsonFile)
	require.NoError(t, err)
	assert.True(t, grp.Equal(parsed))

	_, err = NewGroupFromFile(filepath.Join(dir, "group.yaml"))
	assert.Error(t, err)
}

func TestGenerateParams(t *testing.T) {
	params, err := GenerateParams(context.Background(), 128)
	require.NoError(t, err)
	assert.Equal(t, 128, params.P.BitLen())
	assert.True(t, params.Q.ProbablyPrime(20))

	grp, err := NewGroupFromParams(params)
	require.NoError(t, err)
	assert.True(t, grp.IsMember(big.NewInt(4)))
}
