// Package hcl loads maze manifests written in HCL.
//
// A manifest holds any number of `maze` blocks (text layouts) and `graph`
// blocks (explicit neighbor lists):
//
//	maze "small" {
//	  fork_after = 3
//	  layout     = <<-EOT
//	    *****
//	    *S G*
//	    *****
//	  EOT
//	}
//
//	graph "ring" {
//	  start      = 0
//	  goals      = [3]
//	  undirected = true
//	  node "0" { neighbors = [1, 4] }
//	  node "1" { neighbors = [2] }
//	  ...
//	}
//
// Files are parsed with hclparse, decoded with gohcl, and list attributes
// are converted through cty. Plain text files passed directly are treated
// as a single maze layout named after the file.
package hcl
