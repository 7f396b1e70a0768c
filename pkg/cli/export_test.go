package cli

var ParseRemoteOwner = parseRemoteOwner

var FormatDate = formatDate
