// Package images mirrors player headshots and team logos into object storage.
//
// Fetcher tries a fixed list of CDN URLs per image and keeps the first 200
// response whose body is large enough to be a real image (headshots above
// 5000 bytes, logos above 1024). Some teams have a special logo URL that is
// tried first without a size floor.
//
// Service uploads the images under images/players/<id>.png and
// logos/<code>.<ext>, skipping objects that already exist unless asked to
// overwrite.
package images
