package options

import "math"

const (
	k = 1 << 10
	m = 1 << 20
	g = 1 << 30
)

// Catalog returns the memory options known without any config
func Catalog() *Set {
	s := NewSet("memory")

	Define[uint64](s, "MaxHeapSize", 96*m, "Maximum heap size (in bytes)")
	Define[uint64](s, "InitialHeapSize", 0, "Initial heap size (in bytes); zero means use ergonomics")
	Define[uint64](s, "MinHeapSize", 0, "Minimum heap size (in bytes); zero means use ergonomics")
	Define[uint64](s, "NewSize", 1*m, "Initial new generation size (in bytes)")
	Define[uint64](s, "MaxNewSize", math.MaxUint64, "Maximum new generation size (in bytes)")
	Define[uint64](s, "MetaspaceSize", 21*m, "Metaspace size that triggers the first collection (in bytes)")
	Define[uint64](s, "MaxMetaspaceSize", math.MaxUint64, "Maximum size of metaspace (in bytes)")
	DefineRange[uint64](s, "CompressedClassSpaceSize", 1*g, 1*m, 3*g, "Maximum size of the compressed class space")
	DefineRange[uint64](s, "ReservedCodeCacheSize", 48*m, 0, 2*g, "Reserved code cache size (in bytes)")
	Define[uint64](s, "MaxDirectMemorySize", 0, "Maximum total size of direct buffers")
	Define[uint64](s, "LargePageSizeInBytes", 0, "Maximum large page size; zero means use the default")
	Define[uint64](s, "MarkStackSize", 4*m, "Size of marking stack")
	Define[uint64](s, "MarkStackSizeMax", 512*m, "Maximum size of marking stack")

	DefineRange[int64](s, "ThreadStackSize", 1*m, 0, 1*g, "Java thread stack size (in bytes)")
	DefineRange[int64](s, "VMThreadStackSize", 1*m, 0, 1*g, "Non-Java thread stack size (in bytes)")
	DefineRange[int64](s, "CompilerThreadStackSize", 0, 0, 1*g, "Compiler thread stack size (in bytes)")

	DefineRange[int32](s, "ObjectAlignmentInBytes", 8, 8, 256, "Default object alignment in bytes")
	DefineRange[int32](s, "AllocatePrefetchDistance", -1, -1, 512, "Distance to prefetch ahead of allocation pointer; -1 means use the system default")

	DefineRange[uint32](s, "StringTableSize", 64*k, 128, 16*m, "Number of buckets in the interned String table")
	DefineRange[uint32](s, "SymbolTableSize", 32*k, 1*k, 16*m, "Number of buckets in the Symbol table")
	DefineRange[uint32](s, "CodeCacheExpansionSize", 64*k, 32*k, 64*m, "Code cache expansion size (in bytes)")

	return s
}
