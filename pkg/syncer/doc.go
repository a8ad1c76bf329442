// Package syncer runs a whole sync: for every configured system it scans the
// local directory, classifies the files into destination buckets and hands
// the resulting plan to the transfer package.
package syncer
