// Package site builds the hello-world document served and published by
// htmlr.
//
// The page is one template with placeholder tokens for the title, the
// stylesheet, the scripts and the main content. It is built once and
// rendered per request with a fresh token mapping.
package site
