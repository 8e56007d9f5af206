// Package cds contains the core types of a reader and writer for the CDS/Vizier
// fixed-column astronomical table format (http://vizier.u-strasbg.fr/doc/catstd.htx).
// This root package defines the column descriptor and metadata types shared by all
// components, as well as the collaborator interfaces (line acquisition, unit
// parsing, per-column formatting) which concrete implementations provide in
// sub-packages.
package cds
