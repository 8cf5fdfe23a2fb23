// Package fileutil provides the filesystem predicates used while curating
// duplicate groups and naming converted files.
package fileutil
