/*
Package x contains extension interfaces shared by the message
handlers, along with sub-packages implementing them.

Code in this top-level package must be very stable: everything under
x/ may depend on it, nothing here may depend on the sub-packages.
*/
package x
