// Package case03 implements the front-coded text line codec: each line of a
// line-oriented text file is packed as a longest-common-prefix delta
// against the previous line, with no stored row count — decode runs to the
// end of the buffer rather than counting down from a header field.
package case03
