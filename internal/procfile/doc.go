// Package procfile loads procedure files from disk into the
// format-agnostic model executed by the runner.
//
// A procedure file declares one or more named procedures, each an ordered
// mix of groups and standalone steps:
//
//	procedure "build-image" {
//	  group "base" {
//	    check = "test -d ${env.datadir}/base"
//	    step "download" {
//	      title = "Download base image"
//	      check = "test -f ${env.datadir}/base/image.qcow2"
//	      run   = "curl -fsSo ${env.datadir}/base/image.qcow2 $IMAGE_URL"
//	    }
//	  }
//	}
//
// check commands must be read-only; their exit status is the sole input
// to the skip decision.
package procfile
