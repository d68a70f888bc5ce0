// Package integrationtests runs read2env scripts through the full app.
package integrationtests
