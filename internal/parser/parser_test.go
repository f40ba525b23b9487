package parser

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kintree/internal/schema"
	"github.com/vk/kintree/tree"
)

func parse(t *testing.T, src string) (*tree.System, error) {
	t.Helper()
	return Parse(context.Background(), decode(t, src))
}

const validHeader = `<options gravity="0 0 -9.81" dt="0.01"/>`

func TestParseTwoLinkScenario(t *testing.T) {
	sys, err := parse(t, `<kintree model="demo">`+validHeader+`
		<worldbody>
			<body name="a" joint="free" pos="0 0 1">
				<body name="b" joint="hinge">
					<geom type="sphere" mass="1.0" pos="0 0 0" dim="0.1"/>
				</body>
			</body>
		</worldbody>
	</kintree>`)
	require.NoError(t, err)

	assert.Equal(t, "demo", sys.Model)
	assert.Equal(t, 2, sys.NumLinks())
	assert.Equal(t, []int{-1, 0}, sys.Parents)
	assert.Equal(t, []string{"a", "b"}, sys.Names)
	assert.Equal(t, []tree.JointType{tree.JointFree, tree.JointHinge}, sys.JointTypes)

	assert.Equal(t, [3]float64{0, 0, 1}, sys.Transforms[0].Pos)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, sys.Transforms[0].Rot)

	require.Len(t, sys.Geoms[0], 0)
	require.Len(t, sys.Geoms[1], 1)
	sphere, ok := sys.Geoms[1][0].(tree.Sphere)
	require.True(t, ok)
	assert.Equal(t, 1.0, sphere.Mass)
	assert.Equal(t, 0.1, sphere.Radius)

	// free(6) + hinge(1)
	assert.Len(t, sys.Damping, 7)
	assert.Len(t, sys.Armature, 7)

	assert.Equal(t, tree.Options{Gravity: [3]float64{0, 0, -9.81}, Dt: 0.01}, sys.Options)
}

func TestParseStructuralViolations(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "missing options", src: `<kintree><worldbody/></kintree>`},
		{name: "missing worldbody", src: `<kintree>` + validHeader + `</kintree>`},
		{name: "duplicate options", src: `<kintree>` + validHeader + validHeader + `<worldbody/></kintree>`},
		{name: "duplicate worldbody", src: `<kintree>` + validHeader + `<worldbody/><worldbody/></kintree>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.src)
			require.ErrorIs(t, err, ErrStructuralViolation)
		})
	}
}

func TestParseSchemaViolationBeforeSemantics(t *testing.T) {
	// The unknown tag sits next to a geom whose joint type is also bogus;
	// schema validation must win because it runs first.
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="a" joint="nonsense"><motor/></body>
	</worldbody></kintree>`)
	require.ErrorIs(t, err, schema.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "motor")
}

func TestParseOrientation(t *testing.T) {
	t.Run("neither means identity", func(t *testing.T) {
		sys, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="free"/></worldbody></kintree>`)
		require.NoError(t, err)
		assert.Equal(t, [4]float64{1, 0, 0, 0}, sys.Transforms[0].Rot)
	})

	t.Run("quat used directly", func(t *testing.T) {
		sys, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="free" quat="0 1 0 0"/></worldbody></kintree>`)
		require.NoError(t, err)
		assert.Equal(t, [4]float64{0, 1, 0, 0}, sys.Transforms[0].Rot)
	})

	t.Run("euler degrees converted", func(t *testing.T) {
		sys, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="free" euler="90 0 0"/></worldbody></kintree>`)
		require.NoError(t, err)
		half := math.Sqrt2 / 2
		assert.InDelta(t, half, sys.Transforms[0].Rot[0], 1e-12)
		assert.InDelta(t, half, sys.Transforms[0].Rot[1], 1e-12)
		assert.InDelta(t, 0, sys.Transforms[0].Rot[2], 1e-12)
		assert.InDelta(t, 0, sys.Transforms[0].Rot[3], 1e-12)
	})

	t.Run("both is fatal", func(t *testing.T) {
		_, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="free" quat="1 0 0 0" euler="0 0 0"/></worldbody></kintree>`)
		require.ErrorIs(t, err, ErrConflictingOrientation)
	})
}

func TestParseDampingDefaults(t *testing.T) {
	sys, err := parse(t, `<kintree>`+validHeader+`
		<defaults><body damping="0.1"/></defaults>
		<worldbody>
			<body name="a" joint="free"/>
			<body name="b" joint="hinge" damping="0.5"/>
		</worldbody>
	</kintree>`)
	require.NoError(t, err)

	// Link a omits damping: the scalar default is broadcast to the free
	// joint's 6 degrees of freedom. Link b keeps its explicit value.
	require.Len(t, sys.Damping, 7)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0.1, sys.Damping[i])
	}
	assert.Equal(t, 0.5, sys.Damping[6])

	// Armature was never set anywhere and defaults to zeros.
	assert.Equal(t, make([]float64, 7), sys.Armature)
}

func TestParseDOFWidthMismatch(t *testing.T) {
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="free" damping="1 2 3"/></worldbody></kintree>`)
	require.ErrorIs(t, err, ErrDOFWidth)
}

func TestParseUnknownJointType(t *testing.T) {
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="warp"/></worldbody></kintree>`)
	require.ErrorIs(t, err, ErrUnknownJointType)
}

func TestParseUnknownGeomShape(t *testing.T) {
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="a" joint="free"><geom type="torus" mass="1" pos="0 0 0" dim="0.1"/></body>
	</worldbody></kintree>`)
	require.ErrorIs(t, err, ErrUnknownGeomShape)
}

func TestParseGeomShapes(t *testing.T) {
	sys, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="a" joint="free">
			<geom type="box" mass="1" pos="0 0 0" dim="0.2 0.3 0.4"/>
			<geom type="cylinder" mass="2" pos="1 0 0" dim="0.1 0.5"/>
			<geom type="sphere" mass="3" pos="0 1 0" dim="0.25"/>
		</body>
	</worldbody></kintree>`)
	require.NoError(t, err)
	require.Len(t, sys.Geoms[0], 3)

	box, ok := sys.Geoms[0][0].(tree.Box)
	require.True(t, ok)
	assert.Equal(t, tree.Box{Mass: 1, X: 0.2, Y: 0.3, Z: 0.4}, box)

	cyl, ok := sys.Geoms[0][1].(tree.Cylinder)
	require.True(t, ok)
	assert.Equal(t, tree.Cylinder{Mass: 2, Position: [3]float64{1, 0, 0}, Radius: 0.1, Length: 0.5}, cyl)

	sphere, ok := sys.Geoms[0][2].(tree.Sphere)
	require.True(t, ok)
	assert.Equal(t, tree.Sphere{Mass: 3, Position: [3]float64{0, 1, 0}, Radius: 0.25}, sphere)
}

func TestParseGeomDimensionMismatch(t *testing.T) {
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="a" joint="free"><geom type="box" mass="1" pos="0 0 0" dim="0.1"/></body>
	</worldbody></kintree>`)
	require.ErrorIs(t, err, ErrGeomDimension)
}

func TestParseVisualMetadata(t *testing.T) {
	sys, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="a" joint="free">
			<geom type="sphere" mass="1" pos="0 0 0" dim="0.1" vispy_color="1 0 0" vispy_shading="smooth"/>
		</body>
	</worldbody></kintree>`)
	require.NoError(t, err)

	sphere := sys.Geoms[0][0].(tree.Sphere)
	require.NotNil(t, sphere.Visual)
	assert.Equal(t, []float64{1, 0, 0}, sphere.Visual["color"])
	assert.Equal(t, "smooth", sphere.Visual["shading"])
}

func TestParseDuplicateBodyName(t *testing.T) {
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="a" joint="free"/><body name="a" joint="hinge"/>
	</worldbody></kintree>`)
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestParseMissingRequiredAttributes(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "body without name", src: `<kintree>` + validHeader + `<worldbody><body joint="free"/></worldbody></kintree>`},
		{name: "body without joint", src: `<kintree>` + validHeader + `<worldbody><body name="a"/></worldbody></kintree>`},
		{name: "geom without mass", src: `<kintree>` + validHeader + `<worldbody><body name="a" joint="free"><geom type="sphere" pos="0 0 0" dim="0.1"/></body></worldbody></kintree>`},
		{name: "geom without dim", src: `<kintree>` + validHeader + `<worldbody><body name="a" joint="free"><geom type="sphere" mass="1" pos="0 0 0"/></body></worldbody></kintree>`},
		{name: "options without dt", src: `<kintree><options gravity="0 0 -9.81"/><worldbody/></kintree>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.src)
			require.ErrorIs(t, err, ErrMissingAttribute)
		})
	}
}

func TestParseInvalidOptions(t *testing.T) {
	_, err := parse(t, `<kintree><options gravity="0 0 -9.81" dt="-0.01"/><worldbody/></kintree>`)
	require.ErrorIs(t, err, ErrInvalidAttribute)

	_, err = parse(t, `<kintree><options gravity="0 -9.81" dt="0.01"/><worldbody/></kintree>`)
	require.ErrorIs(t, err, ErrInvalidAttribute)
}

func TestParsePreOrderInvariants(t *testing.T) {
	sys, err := parse(t, `<kintree>`+validHeader+`<worldbody>
		<body name="r1" joint="free">
			<body name="c1" joint="hinge">
				<body name="g1" joint="spherical"/>
			</body>
			<body name="c2" joint="slide"/>
		</body>
		<body name="r2" joint="frozen"/>
	</worldbody></kintree>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "c1", "g1", "c2", "r2"}, sys.Names)
	assert.Equal(t, []int{-1, 0, 1, 0, -1}, sys.Parents)
	for i, p := range sys.Parents {
		if i == 0 {
			assert.Equal(t, -1, p)
			continue
		}
		assert.Less(t, p, i, "parent of link %d must precede it", i)
		assert.GreaterOrEqual(t, p, -1)
	}

	wantDOF := 0
	for _, jt := range sys.JointTypes {
		dof, ok := jt.DOF()
		require.True(t, ok)
		wantDOF += dof
	}
	assert.Len(t, sys.Damping, wantDOF)
	assert.Len(t, sys.Armature, wantDOF)
}

func TestParseRoundTripWithEmptyDefaults(t *testing.T) {
	const bodies = `<worldbody>
		<body name="a" joint="free" pos="0 0 1" damping="1 2 3 4 5 6" armature="0.1">
			<geom type="sphere" mass="1" pos="0 0 0" dim="0.1"/>
		</body>
	</worldbody>`

	plain, err := parse(t, `<kintree model="m">`+validHeader+bodies+`</kintree>`)
	require.NoError(t, err)
	withDefaults, err := parse(t, `<kintree model="m">`+validHeader+`<defaults/>`+bodies+`</kintree>`)
	require.NoError(t, err)

	assert.Equal(t, plain, withDefaults)
}

func TestParseNonNumericDamping(t *testing.T) {
	_, err := parse(t, `<kintree>`+validHeader+`<worldbody><body name="a" joint="free" damping="soft"/></worldbody></kintree>`)
	require.ErrorIs(t, err, ErrInvalidAttribute)
}

func TestParseWrongRootTag(t *testing.T) {
	_, err := parse(t, `<robot><worldbody/></robot>`)
	require.ErrorIs(t, err, ErrStructuralViolation)
}
