package mathutil

// Vec4 is a homogeneous 4-component vector (value type, stack-allocated).
type Vec4 [4]float64

// Vec4FromVec3 lifts a 3D point to homogeneous coordinates with w = 1.
func Vec4FromVec3(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
