// Package mapping provides the multi-namespace mapping table consumed by
// resolvers, a builder that freezes it, and a YAML provider for it.
//
// A Table records, for every mapped class, its binary name in each
// namespace together with the fields and methods it declares directly.
// Inherited members are never copied onto subclasses; walking the class
// hierarchy is the resolver's job. Tables are immutable once built and may
// be shared freely between goroutines.
//
// # YAML Schema
//
//	version: "1"
//	namespaces: [mojang+yarn, spigot]
//	classes:
//	  - names: {mojang+yarn: net.minecraft.server.level.ServerLevel, spigot: net.minecraft.server.level.WorldServer}
//	    superclass: net.minecraft.world.level.Level
//	    fields:
//	      - names: {mojang+yarn: players, spigot: z}
//	        descriptor: Ljava/util/List;
//	    methods:
//	      - names: [getSeed, A]      # positional, in namespace order
//	        descriptor: ()J
//	      - names: tick              # same name in every namespace
//	        descriptor: (Ljava/util/function/BooleanSupplier;)V
//
// Names are written as a map keyed by namespace, as a list in namespace
// order, or as a single scalar shared by every namespace. Descriptors and
// superclass names use the first namespace. The superclass entries are not
// part of the table; File.Hierarchy turns them into a hierarchy provider.
//
// # Invariants
//
//   - at least two distinct namespaces
//   - every entry is named in the first namespace
//   - class names are unique per namespace
//   - field names are unique per class per namespace
//   - (name, descriptor) is unique per class per namespace for methods
package mapping
