package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.MulScalar(2))
	assert.InDelta(t, 32.0, float64(a.Dot(b)), 1e-5)
}

func TestVec3NormalizeAndLength(t *testing.T) {
	v := NewVec3(3, 0, 4)

	assert.InDelta(t, 5.0, float64(v.Length()), 1e-5)
	assert.InDelta(t, 25.0, float64(v.LengthSquared()), 1e-5)
	assert.InDelta(t, 1.0, float64(v.Normalize().Length()), 1e-5)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	assert.True(t, x.Cross(y).Compare(NewVec3(0, 0, 1), K_FLOAT_EPSILON))
	assert.True(t, y.Cross(x).Compare(NewVec3(0, 0, -1), K_FLOAT_EPSILON))
}

func TestMat4IdentityLeavesPointsAlone(t *testing.T) {
	point := NewVec3(1, -2, 3)

	moved := point.Transform(NewMat4Identity())
	assert.True(t, moved.Compare(point, K_FLOAT_EPSILON))
}

func TestMat4TranslationMovesPoints(t *testing.T) {
	point := NewVec3(1, 1, 1)
	translation := NewMat4Translation(NewVec3(2, 0, -3))

	moved := point.Transform(translation)
	assert.True(t, moved.Compare(NewVec3(3, 1, -2), K_FLOAT_EPSILON), "got %v", moved)
}

func TestMat4MulWithIdentity(t *testing.T) {
	translation := NewMat4Translation(NewVec3(1, 2, 3))

	assert.Equal(t, translation, translation.Mul(NewMat4Identity()))
	assert.Equal(t, translation, NewMat4Identity().Mul(translation))
}

func TestExportedTrigMatchesExpectations(t *testing.T) {
	assert.InDelta(t, 0.0, float64(Sin(0)), 1e-6)
	assert.InDelta(t, 1.0, float64(Cos(0)), 1e-6)
	assert.InDelta(t, 1.0, float64(Sin(K_HALF_PI)), 1e-6)
	assert.InDelta(t, 5.0, float64(Sqrt(25)), 1e-6)
	assert.InDelta(t, 2.5, float64(Abs(-2.5)), 1e-6)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(10, 0, 5))
	assert.Equal(t, 0, Clamp(-1, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))
	assert.Equal(t, 1.5, Clamp(1.5, 1.0, 2.0))
}
