/*
ocimcp exposes Oracle Cloud Infrastructure management operations as tools
over the Model Context Protocol. The root package defines the error kinds
shared by the tool packages; the server lives in pkg/mcp and the tools in
pkg/oci and its sub-packages.
*/
package ocimcp
