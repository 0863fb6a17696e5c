package cli

import (
	"fmt"
	"io"

	"github.com/Faultbox/gltfpack/internal/settings"
)

// Version is the release identifier. Release builds override it with
// -ldflags "-X github.com/Faultbox/gltfpack/internal/cli.Version=...".
var Version = "0.15"

type helpEntry struct {
	usage string
	short bool // also shown in the short usage text
}

type helpSection struct {
	title   string
	entries []helpEntry
}

func helpSections() []helpSection {
	def := settings.Default()
	bits := func(flag, what string, value int, r settings.IntRange) helpEntry {
		return helpEntry{usage: fmt.Sprintf("%s N: use N-bit quantization for %s (default: %d; N should be between %d and %d)",
			flag, what, value, r.Min, r.Max)}
	}

	sections := []helpSection{
		{"Basics", []helpEntry{
			{"-i file: input file to process, .obj/.gltf/.glb", true},
			{"-o file: output file path, .gltf/.glb", true},
			{"-c: produce compressed gltf/glb files (-cc for higher compression ratio)", true},
		}},
		{"Textures", []helpEntry{
			{"-tc: convert all textures to KTX2 with BasisU supercompression", true},
			{"-tu [C]: use UASTC when encoding textures (much higher quality and much larger size)", false},
			{fmt.Sprintf("-tq [C] N: set texture encoding quality (default: %d; N should be between %d and %d)",
				settings.DefaultTextureQuality, settings.TextureQualityRange.Min, settings.TextureQualityRange.Max), false},
			{"-ts R: scale texture dimensions by the ratio R (default: 1; R should be between 0 and 1; requires -tc)", false},
			{"-tp: resize textures to nearest power of 2 to conform to WebGL1 restrictions (requires -tc)", false},
			{"-tfy: flip textures along Y axis during BasisU supercompression (requires -tc)", false},
			{"Texture classes: C is a comma-separated list of color, normal, attrib", false},
		}},
		{"Simplification", []helpEntry{
			{"-si R: simplify meshes to achieve the ratio R (default: 1; R should be between 0 and 1)", true},
			{"-sa: aggressively simplify to the target ratio disregarding quality", false},
		}},
		{"Vertices", []helpEntry{
			bits("-vp", "positions", def.PosBits, settings.VertexBitsRange),
			bits("-vt", "texture coordinates", def.TexBits, settings.VertexBitsRange),
			bits("-vn", "normals and tangents", def.NrmBits, settings.VertexBitsRange),
			bits("-vc", "colors", def.ColBits, settings.VertexBitsRange),
		}},
		{"Animations", []helpEntry{
			bits("-at", "translations", def.TrnBits, settings.TranslationBitsRange),
			bits("-ar", "rotations", def.RotBits, settings.RotationBitsRange),
			bits("-as", "scale", def.SclBits, settings.ScaleBitsRange),
			{fmt.Sprintf("-af N: resample animations at N Hz (default: %d; N should be between %d and %d)",
				def.AnimFreq, settings.AnimFreqRange.Min, settings.AnimFreqRange.Max), false},
			{"-ac: keep constant animation tracks even if they don't modify the node transform", false},
		}},
		{"Scene", []helpEntry{
			{"-kn: keep named nodes and meshes attached to named nodes so that named nodes can be transformed externally", false},
			{"-km: keep named materials and disable named material merging", false},
			{"-ke: keep extras data", false},
			{"-mm: merge instances of the same mesh together when possible", false},
			{"-mi: use EXT_mesh_gpu_instancing when serializing multiple mesh instances", false},
		}},
		{"Miscellaneous", []helpEntry{
			{"-cf: produce compressed gltf/glb files with fallback for loaders that don't support compression", false},
			{"-noq: disable quantization; produces much larger glTF files with no extensions", false},
			{"-v: verbose output (print version when used without other options)", false},
			{"-vv: very verbose output, including the effective settings", false},
			{"-r file: output a JSON report to file", false},
			{"-test: process every following non-option argument as an input, without writing output", false},
			{"-h: display this help and exit", false},
		}},
	}

	if settings.DebugOptions {
		sections = append(sections, helpSection{"Debug", []helpEntry{
			{"-sd R: simplification debug ratio (R should be between 0 and 1)", false},
			{fmt.Sprintf("-md N: meshlet debug (N should be between %d and %d)",
				settings.MeshletDebugRange.Min, settings.MeshletDebugRange.Max), false},
		}})
	}
	return sections
}

// PrintUsage writes the usage text to w. The long form lists every option grouped
// by section; the short form lists only the basic options.
func PrintUsage(w io.Writer, long bool) {
	fmt.Fprintf(w, "gltfpack %s\n", Version)
	fmt.Fprintf(w, "Usage: gltfpack [options] -i input -o output\n")

	if !long {
		fmt.Fprintf(w, "\nBasics:\n")
		for _, s := range helpSections() {
			for _, e := range s.entries {
				if e.short {
					fmt.Fprintf(w, "\t%s\n", e.usage)
				}
			}
		}
		fmt.Fprintf(w, "\nRun gltfpack -h to display a full list of options\n")
		return
	}

	for _, s := range helpSections() {
		fmt.Fprintf(w, "\n%s:\n", s.title)
		for _, e := range s.entries {
			fmt.Fprintf(w, "\t%s\n", e.usage)
		}
	}
}

// PrintVersion writes the version line printed by "gltfpack -v".
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "gltfpack %s\n", Version)
}
