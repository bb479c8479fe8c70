// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffers to reduce garbage collection
// overhead. It abstracts the [bytebufferpool] library behind small interfaces
// so the artifact store can encode PEM blocks into pooled memory before they
// are written to disk.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
