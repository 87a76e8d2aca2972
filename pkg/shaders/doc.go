// Package shaders rebuilds SPIR-V binaries for shader sources whose compiled output is missing
// or older than the source.
//
// The root directory contains one subdirectory per shader group. Inside a group, a source file
// named <name>.<type> is paired with the first file whose name starts with <type> (i.e. blur.frag
// is compiled to frag.spv). Sources without such a partner are compiled to <group>/<type>.spv.
package shaders
