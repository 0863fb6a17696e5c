//go:build !gltfpack_debug

package settings

// DebugOptions reports whether debug-only options (-sd, -md) are available.
const DebugOptions = false
