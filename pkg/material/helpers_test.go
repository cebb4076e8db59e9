package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// objectSpace is a stand-in Transformer for tests that do not need a real shape
type objectSpace struct {
	inverse core.Matrix
}

func (o objectSpace) Inverse() core.Matrix { return o.inverse }

func identityObject() objectSpace {
	return objectSpace{inverse: core.Identity()}
}

func transformedObject(m core.Matrix) objectSpace {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return objectSpace{inverse: inv}
}

func mustSetTransform(p Pattern, m core.Matrix) {
	if err := p.SetTransform(m); err != nil {
		panic(err)
	}
}
