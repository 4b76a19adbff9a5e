// Package markdown implements the content record workflows: front matter
// parsing and serialization, filesystem discovery, body inspection, and
// catalogue import. Rendering is out of scope; the external site generator
// owns HTML output.
package markdown
