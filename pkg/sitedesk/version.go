// Package sitedesk holds module-wide metadata.
package sitedesk

// Version is the release version of the sitedesk module.
const Version = "0.1.0"
