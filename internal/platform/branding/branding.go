// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the product name shown in page titles and server metadata.
const AppName = "PostForge"
