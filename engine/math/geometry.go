package math

// GenerateNormals computes one normal per vertex from the winding of the
// triangles that use it. Positions are consumed three indices at a time.
// NOTE: This just generates face normals. Smoothing out should be done in a
// separate pass if desired.
func GenerateNormals(positions []Vec3, indices []uint32) []Vec3 {
	normals := make([]Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := positions[i1].Sub(positions[i0])
		edge2 := positions[i2].Sub(positions[i0])

		normal := edge1.Cross(edge2).Normalize()

		normals[i0] = normal
		normals[i1] = normal
		normals[i2] = normal
	}
	return normals
}

// BoundingSphere returns the center and radius of a sphere enclosing all of
// the given points. The center is the centroid, not the optimal center.
func BoundingSphere(points []Vec3) (Vec3, float32) {
	if len(points) == 0 {
		return NewVec3Zero(), 0
	}

	center := NewVec3Zero()
	for _, point := range points {
		center = center.Add(point)
	}
	center = center.MulScalar(1.0 / float32(len(points)))

	radius := float32(0)
	for _, point := range points {
		if d := center.Distance(point); d > radius {
			radius = d
		}
	}
	return center, radius
}
