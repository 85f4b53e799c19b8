package vecmath

import "github.com/dgravesa/go-parallel/parallel"

// Batch transforms come in two flavors. The Range forms walk a sub-range of
// the source serially and write into an arbitrary offset of dest; out of
// range indices panic with the usual slice bounds error. The Slice forms
// transform whole slices and fan the work out across goroutines, which is
// safe because each element is independent of the others.

// Vector2TransformRange transforms count points from source starting at
// sourceIdx and stores them into dest starting at destIdx.
func Vector2TransformRange(source []Vector2, sourceIdx int, mat Matrix, dest []Vector2, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].Transform(mat)
	}
}

// Vector2TransformNormalRange transforms count directions from source
// starting at sourceIdx and stores them into dest starting at destIdx.
func Vector2TransformNormalRange(source []Vector2, sourceIdx int, mat Matrix, dest []Vector2, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].TransformNormal(mat)
	}
}

// Vector2TransformQuaternionRange rotates count vectors from source starting
// at sourceIdx and stores them into dest starting at destIdx.
func Vector2TransformQuaternionRange(source []Vector2, sourceIdx int, q Quaternion, dest []Vector2, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].TransformQuaternion(q)
	}
}

// Vector2TransformSlice transforms every point in source into dest in
// parallel. dest must be at least as long as source.
func Vector2TransformSlice(source []Vector2, mat Matrix, dest []Vector2) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].Transform(mat)
	})
}

// Vector2TransformNormalSlice transforms every direction in source into dest
// in parallel. dest must be at least as long as source.
func Vector2TransformNormalSlice(source []Vector2, mat Matrix, dest []Vector2) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].TransformNormal(mat)
	})
}

// Vector2TransformQuaternionSlice rotates every vector in source into dest
// in parallel. dest must be at least as long as source.
func Vector2TransformQuaternionSlice(source []Vector2, q Quaternion, dest []Vector2) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].TransformQuaternion(q)
	})
}

// Vector3TransformRange transforms count points from source starting at
// sourceIdx and stores them into dest starting at destIdx.
func Vector3TransformRange(source []Vector3, sourceIdx int, mat Matrix, dest []Vector3, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].Transform(mat)
	}
}

// Vector3TransformNormalRange transforms count directions from source
// starting at sourceIdx and stores them into dest starting at destIdx.
func Vector3TransformNormalRange(source []Vector3, sourceIdx int, mat Matrix, dest []Vector3, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].TransformNormal(mat)
	}
}

// Vector3TransformQuaternionRange rotates count vectors from source starting
// at sourceIdx and stores them into dest starting at destIdx.
func Vector3TransformQuaternionRange(source []Vector3, sourceIdx int, q Quaternion, dest []Vector3, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].TransformQuaternion(q)
	}
}

// Vector3TransformSlice transforms every point in source into dest in
// parallel. dest must be at least as long as source.
func Vector3TransformSlice(source []Vector3, mat Matrix, dest []Vector3) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].Transform(mat)
	})
}

// Vector3TransformNormalSlice transforms every direction in source into dest
// in parallel. dest must be at least as long as source.
func Vector3TransformNormalSlice(source []Vector3, mat Matrix, dest []Vector3) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].TransformNormal(mat)
	})
}

// Vector3TransformQuaternionSlice rotates every vector in source into dest
// in parallel. dest must be at least as long as source.
func Vector3TransformQuaternionSlice(source []Vector3, q Quaternion, dest []Vector3) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].TransformQuaternion(q)
	})
}

// Vector4TransformRange transforms count vectors from source starting at
// sourceIdx and stores them into dest starting at destIdx.
func Vector4TransformRange(source []Vector4, sourceIdx int, mat Matrix, dest []Vector4, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].Transform(mat)
	}
}

// Vector4TransformNormalRange transforms count directions from source
// starting at sourceIdx and stores them into dest starting at destIdx.
func Vector4TransformNormalRange(source []Vector4, sourceIdx int, mat Matrix, dest []Vector4, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].TransformNormal(mat)
	}
}

// Vector4TransformQuaternionRange rotates count vectors from source starting
// at sourceIdx and stores them into dest starting at destIdx.
func Vector4TransformQuaternionRange(source []Vector4, sourceIdx int, q Quaternion, dest []Vector4, destIdx, count int) {
	for i := 0; i < count; i++ {
		dest[destIdx+i] = source[sourceIdx+i].TransformQuaternion(q)
	}
}

// Vector4TransformSlice transforms every vector in source into dest in
// parallel. dest must be at least as long as source.
func Vector4TransformSlice(source []Vector4, mat Matrix, dest []Vector4) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].Transform(mat)
	})
}

// Vector4TransformNormalSlice transforms every direction in source into dest
// in parallel. dest must be at least as long as source.
func Vector4TransformNormalSlice(source []Vector4, mat Matrix, dest []Vector4) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].TransformNormal(mat)
	})
}

// Vector4TransformQuaternionSlice rotates every vector in source into dest
// in parallel. dest must be at least as long as source.
func Vector4TransformQuaternionSlice(source []Vector4, q Quaternion, dest []Vector4) {
	parallel.For(len(source), func(i, _ int) {
		dest[i] = source[i].TransformQuaternion(q)
	})
}
