package model

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*Mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *Mesh) {
		m.name = name
	}
}

// WithPositions is an option builder that sets the flat xyz position list.
//
// Parameters:
//   - positions: three floats per vertex
//
// Returns:
//   - MeshBuilderOption: a function that applies the positions option to a mesh
func WithPositions(positions []float32) MeshBuilderOption {
	return func(m *Mesh) {
		m.positions = positions
	}
}

// WithNormals is an option builder that sets the flat xyz normal list.
// A list whose length differs from the positions is discarded in favor of radial normals.
//
// Parameters:
//   - normals: three floats per vertex
//
// Returns:
//   - MeshBuilderOption: a function that applies the normals option to a mesh
func WithNormals(normals []float32) MeshBuilderOption {
	return func(m *Mesh) {
		m.normals = normals
	}
}

// WithIndices is an option builder that sets the index list.
//
// Parameters:
//   - indices: triangle or line indices
//
// Returns:
//   - MeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices(indices []uint32) MeshBuilderOption {
	return func(m *Mesh) {
		m.indices = indices
	}
}
