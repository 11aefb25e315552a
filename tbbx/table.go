package tbbx

//TBBR extension OID arc: 1.3.6.1.4.1.4128.2100
//
//Counters are ASN.1 INTEGERs; content hashes and embedded public keys are
//DER blobs encapsulated in OCTET STRINGs
var tbbTable = []Descriptor{
	{
		OID:       "1.3.6.1.4.1.4128.2100.1",
		ShortName: "TrustedNvCounter",
		LongName:  "Trusted Firmware NVCounter",
		Type:      Integer,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.2",
		ShortName: "NonTrustedNvCounter",
		LongName:  "Non-Trusted Firmware NVCounter",
		Type:      Integer,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.201",
		ShortName: "TrustedBootFwHash",
		LongName:  "Trusted Boot Firmware Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.202",
		ShortName: "TrustedBootFwConfigHash",
		LongName:  "Trusted Boot Firmware Config Hash",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.203",
		ShortName: "HwConfigHash",
		LongName:  "Hardware Config Hash",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.204",
		ShortName: "FwConfigHash",
		LongName:  "Firmware Config Hash",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.302",
		ShortName: "TrustedWorldPK",
		LongName:  "Trusted World Public Key",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.303",
		ShortName: "NonTrustedWorldPK",
		LongName:  "Non-Trusted World Public Key",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.601",
		ShortName: "SCPFwContentCertPK",
		LongName:  "SCP Firmware Content Certificate Public Key",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.602",
		ShortName: "SCPFwHash",
		LongName:  "SCP Firmware Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.603",
		ShortName: "SoCFwContentCertPK",
		LongName:  "SoC Firmware Content Certificate Public Key",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.604",
		ShortName: "SoCAPFwHash",
		LongName:  "SoC AP Firmware Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.605",
		ShortName: "SoCFwConfigHash",
		LongName:  "SoC Firmware Config Hash",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.901",
		ShortName: "TOSFwContentCertPK",
		LongName:  "Trusted OS Firmware Content Certificate Public Key",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.902",
		ShortName: "TOSFwHash",
		LongName:  "Trusted OS Firmware Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.903",
		ShortName: "TOSFwExtra1Hash",
		LongName:  "Trusted OS Extra1 Firmware Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.904",
		ShortName: "TOSFwExtra2Hash",
		LongName:  "Trusted OS Extra2 Firmware Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.1201",
		ShortName: "NonTrustedFwContentCertPK",
		LongName:  "Non-Trusted Firmware Content Certificate Public Key",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.1202",
		ShortName: "NonTrustedWorldBootloaderHash",
		LongName:  "Non-Trusted World Bootloader Hash (SHA256)",
		Type:      OctetString,
	},
	{
		OID:       "1.3.6.1.4.1.4128.2100.1203",
		ShortName: "NonTrustedFwConfigHash",
		LongName:  "Non-Trusted Firmware Config Hash",
		Type:      OctetString,
	},
}

//Table the static TBBR extension catalog. A fresh copy is returned so the
//built-in table cannot be mutated between callers
func Table() []Descriptor {
	t := make([]Descriptor, len(tbbTable))
	copy(t, tbbTable)

	return t
}
