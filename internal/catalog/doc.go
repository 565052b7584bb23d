// Package catalog discovers platform definition files under one or more
// board roots and indexes the loaded platforms by identifier.
package catalog
