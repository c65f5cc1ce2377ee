package consts

const (
	ApplicationName    = "Blog Platform Server"
	ApplicationVersion = "1.0.0"
)
