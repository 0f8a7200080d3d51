// Package remapper translates class, field and method names from one
// namespace of a mapping table to another so that reflective lookups can
// target a renamed (obfuscated) runtime.
//
// A Resolver is fixed to one namespace pair for its whole life:
//
//	table, err := mapping.LoadTable("mappings.yaml")
//	if err != nil {
//		return err
//	}
//
//	r, err := remapper.New(table, mapping.NamespaceMojangPlusYarn, mapping.NamespaceSpigot,
//		remapper.WithMode(remapper.Permissive),
//		remapper.WithHierarchy(provider, remapper.SideTarget),
//	)
//	if err != nil {
//		return err
//	}
//
//	f, err := r.RemapFieldName("net.minecraft.server.level.ServerLevel", "players")
//
// Mapping tables only list members on the class that declares them. When a
// field or method is not declared on the queried class, the Resolver asks
// the hierarchy provider for the superclass and tries again, nearest class
// first. Interfaces are not walked.
//
// Class names can resolve permissively (unmapped classes such as
// java.lang.String resolve to themselves). Fields and methods never do: an
// unmapped member is always an error.
//
// Successful results are cached for the life of the Resolver. A Resolver
// is safe for concurrent use.
package remapper
